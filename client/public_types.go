package client

import "github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Envelope
	Response[T any] = types.Response[T]
	RawResponse     = types.RawResponse
	RequestOptions  = types.RequestOptions

	// Requests
	LoginRequest    = types.LoginRequest
	RegisterRequest = types.RegisterRequest
	UserUpdate      = types.UserUpdate
	PostCreate      = types.PostCreate
	PostUpdate      = types.PostUpdate
	ProductCreate   = types.ProductCreate
	ProductUpdate   = types.ProductUpdate
	CategoryCreate  = types.CategoryCreate
	CategoryUpdate  = types.CategoryUpdate
	OrderCreate     = types.OrderCreate
	OrderItemCreate = types.OrderItemCreate
	OrderUpdate     = types.OrderUpdate

	// List parameters
	Page           = types.Page
	ProductFilter  = types.ProductFilter
	CategoryFilter = types.CategoryFilter
	OrderFilter    = types.OrderFilter

	// Domain entities
	Amount          = types.Amount
	User            = types.User
	Token           = types.Token
	Post            = types.Post
	Product         = types.Product
	Category        = types.Category
	Order           = types.Order
	OrderItem       = types.OrderItem
	OrderStatus     = types.OrderStatus
	DashboardStats  = types.DashboardStats
	MessageResponse = types.MessageResponse
)

// Order statuses accepted by the backend.
const (
	OrderPending   = types.OrderPending
	OrderPaid      = types.OrderPaid
	OrderShipped   = types.OrderShipped
	OrderDelivered = types.OrderDelivered
	OrderCancelled = types.OrderCancelled
)
