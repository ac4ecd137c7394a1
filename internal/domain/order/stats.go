package order

// Stats is the dashboard summary served by the backend admin API.
type Stats struct {
	TotalOrders       int64 `json:"totalOrders"`
	TotalRevenue      int64 `json:"totalRevenue"`
	AverageOrderValue int64 `json:"averageOrderValue"`
	PendingOrders     int64 `json:"pendingOrders"`
	ProcessingOrders  int64 `json:"processingOrders"`
	ShippedOrders     int64 `json:"shippedOrders"`
	DeliveredOrders   int64 `json:"deliveredOrders"`
	TodayOrders       int64 `json:"todayOrders"`
}
