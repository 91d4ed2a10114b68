package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds credentials for the login endpoint
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest holds parameters for a new user
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// UserUpdate holds the profile fields to change; nil fields are left untouched.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Password *string `json:"password,omitempty"`
}

// PostCreate holds parameters for a new post
type PostCreate struct {
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	IsPublished bool   `json:"is_published"`
}

// PostUpdate holds the post fields to change
type PostUpdate struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

// ProductCreate holds parameters for a new product
type ProductCreate struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Price         Amount `json:"price"`
	StockQuantity int    `json:"stock_quantity"`
	CategoryID    *int   `json:"category_id,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	IsActive      bool   `json:"is_active"`
}

// ProductUpdate holds the product fields to change
type ProductUpdate struct {
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	Price         *Amount `json:"price,omitempty"`
	StockQuantity *int    `json:"stock_quantity,omitempty"`
	CategoryID    *int    `json:"category_id,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// CategoryCreate holds parameters for a new category
type CategoryCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    *int   `json:"parent_id,omitempty"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

// CategoryUpdate holds the category fields to change
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ParentID    *int    `json:"parent_id,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// OrderItemCreate is one requested order line
type OrderItemCreate struct {
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     Amount `json:"price"`
}

// OrderCreate holds parameters for a new order
type OrderCreate struct {
	ShippingAddress string            `json:"shipping_address,omitempty"`
	Items           []OrderItemCreate `json:"items"`
}

// OrderUpdate holds the order fields to change
type OrderUpdate struct {
	Status          *OrderStatus `json:"status,omitempty"`
	ShippingAddress *string      `json:"shipping_address,omitempty"`
}

// ------------------------------
// List parameters
// ------------------------------

// Page selects a window of a paginated list. Zero fields fall back to the
// defaults (skip 0, limit 10).
type Page struct {
	Skip  int
	Limit int
}

// ProductFilter narrows ListProducts.
type ProductFilter struct {
	CategoryID *int
	Search     string
	ActiveOnly *bool
}

// CategoryFilter narrows ListCategories.
type CategoryFilter struct {
	ParentID   *int
	ActiveOnly *bool
}

// OrderFilter narrows ListOrders.
type OrderFilter struct {
	Status OrderStatus
}
