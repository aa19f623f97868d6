package cmd

import (
	"gorm.io/gorm"

	"printflow/internal/adapters/out/postgres"
	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePrintshopCommandHandler() commands.CreatePrintshopCommandHandler {
	var f commands.PrintshopUoWFactory = FuncPrintshopUoWFactory(func() commands.PrintshopUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePrintshopCommandHandler(f)
}

func (c *CompositionRoot) CreateSetItemStatusCommandHandler() commands.SetItemStatusCommandHandler {
	return commands.NewSetItemStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetItemPrintshopCommandHandler() commands.SetItemPrintshopCommandHandler {
	return commands.NewSetItemPrintshopCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateSetItemDueDateCommandHandler() commands.SetItemDueDateCommandHandler {
	return commands.NewSetItemDueDateCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderPaymentCommandHandler() commands.SetOrderPaymentCommandHandler {
	return commands.NewSetOrderPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelItemsCommandHandler() commands.CancelItemsCommandHandler {
	return commands.NewCancelItemsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderNoteCommandHandler() commands.AddOrderNoteCommandHandler {
	return commands.NewAddOrderNoteCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetVisibleOrdersQueryHandler() queries.GetVisibleOrdersQueryHandler {
	return queries.NewGetVisibleOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrdersByCustomerQueryHandler() queries.GetOrdersByCustomerQueryHandler {
	return queries.NewGetOrdersByCustomerQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetItemsQueryHandler() queries.GetItemsQueryHandler {
	return queries.NewGetItemsQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetAllPrintshopsQueryHandler() queries.GetAllPrintshopsQueryHandler {
	return queries.NewGetAllPrintshopsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueItemsQueryHandler() queries.GetOverdueItemsQueryHandler {
	return queries.NewGetOverdueItemsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncPrintshopUoWFactory func() commands.PrintshopUoW

func (f FuncPrintshopUoWFactory) Create() commands.PrintshopUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
