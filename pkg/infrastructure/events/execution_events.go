package events

import (
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

const (
	WorkOrderCreatedEvent       = "workorder.created"
	WorkOrderStatusChangedEvent = "workorder.status_changed"

	OrderStartedEvent   = "order.started"
	OrderCompletedEvent = "order.completed"

	PlanAttachedEvent = "plan.attached"

	StockPostedEvent = "stock.posted"
)

type WorkOrderCreated struct {
	WorkOrder entities.WorkOrder `json:"work_order"`
}

type WorkOrderStatusChanged struct {
	WorkOrder entities.WorkOrder       `json:"work_order"`
	OldStatus entities.WorkOrderStatus `json:"old_status"`
	NewStatus entities.WorkOrderStatus `json:"new_status"`
}

type OrderStarted struct {
	Order entities.ManufacturingOrder `json:"order"`
}

type OrderCompleted struct {
	Order entities.ManufacturingOrder `json:"order"`
}

type PlanAttached struct {
	OrderID     string                          `json:"order_id"`
	Assignments []entities.WorkCenterAssignment `json:"assignments"`
}

type StockPosted struct {
	Entry entities.StockEntry `json:"entry"`
}

func NewWorkOrderCreatedEvent(workOrder entities.WorkOrder) Event {
	return NewEvent(WorkOrderCreatedEvent, workOrder.OrderID, WorkOrderCreated{WorkOrder: workOrder})
}

func NewWorkOrderStatusChangedEvent(workOrder entities.WorkOrder, oldStatus entities.WorkOrderStatus) Event {
	return NewEvent(WorkOrderStatusChangedEvent, workOrder.OrderID, WorkOrderStatusChanged{
		WorkOrder: workOrder,
		OldStatus: oldStatus,
		NewStatus: workOrder.Status,
	})
}

func NewOrderStartedEvent(order entities.ManufacturingOrder) Event {
	return NewEvent(OrderStartedEvent, order.ID, OrderStarted{Order: order})
}

func NewOrderCompletedEvent(order entities.ManufacturingOrder) Event {
	return NewEvent(OrderCompletedEvent, order.ID, OrderCompleted{Order: order})
}

func NewPlanAttachedEvent(orderID string, assignments []entities.WorkCenterAssignment) Event {
	return NewEvent(PlanAttachedEvent, orderID, PlanAttached{OrderID: orderID, Assignments: assignments})
}

func NewStockPostedEvent(entry entities.StockEntry) Event {
	return NewEvent(StockPostedEvent, string(entry.PartNumber), StockPosted{Entry: entry})
}
