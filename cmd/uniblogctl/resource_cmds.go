package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client"
)

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// crud holds the per-resource calls behind the shared get/create/update/delete commands.
type crud[T, C, U any] struct {
	name   string
	get    func(context.Context, *client.Client, int) *client.Response[T]
	create func(context.Context, *client.Client, C) *client.Response[T]
	update func(context.Context, *client.Client, int, U) *client.Response[T]
}

// addCRUD attaches get/create/update to parent. Delete is resource specific
// because posts answer with a message instead of the deleted record.
func addCRUD[T, C, U any](parent *cobra.Command, f *rootFlags, r crud[T, C, U]) {
	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one " + r.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, f, r.name+" get", func(ctx context.Context, c *client.Client) *client.Response[T] {
				return r.get(ctx, c, id)
			})
		},
	}

	var createData string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a " + r.name + " from a JSON payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req C
			if err := decodeData(createData, &req); err != nil {
				return err
			}
			return run(cmd, f, r.name+" create", func(ctx context.Context, c *client.Client) *client.Response[T] {
				return r.create(ctx, c, req)
			})
		},
	}
	create.Flags().StringVar(&createData, "data", "", "JSON payload")

	var updateData string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a " + r.name + " from a JSON payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var req U
			if err := decodeData(updateData, &req); err != nil {
				return err
			}
			return run(cmd, f, r.name+" update", func(ctx context.Context, c *client.Client) *client.Response[T] {
				return r.update(ctx, c, id, req)
			})
		},
	}
	update.Flags().StringVar(&updateData, "data", "", "JSON payload")

	parent.AddCommand(get, create, update)
}

func deleteCmd[T any](f *rootFlags, name string, del func(context.Context, *client.Client, int) *client.Response[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, f, name+" delete", func(ctx context.Context, c *client.Client) *client.Response[T] {
				return del(ctx, c, id)
			})
		},
	}
}

func newPostsCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "posts", Short: "Manage posts"}

	lists := []struct {
		use, short string
		call       func(*client.Client, context.Context, *client.Page, ...client.CallOption) *client.Response[[]client.Post]
	}{
		{"list", "List all posts", (*client.Client).ListPosts},
		{"published", "List published posts", (*client.Client).ListPublishedPosts},
		{"my", "List the authenticated user's posts", (*client.Client).ListMyPosts},
	}
	for _, l := range lists {
		var page client.Page
		sub := &cobra.Command{
			Use:   l.use,
			Short: l.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, f, "posts "+l.use, func(ctx context.Context, c *client.Client) *client.Response[[]client.Post] {
					return l.call(c, ctx, &page)
				})
			},
		}
		addPageFlags(sub, &page)
		cmd.AddCommand(sub)
	}

	addCRUD(cmd, f, crud[client.Post, client.PostCreate, client.PostUpdate]{
		name: "post",
		get: func(ctx context.Context, c *client.Client, id int) *client.Response[client.Post] {
			return c.GetPost(ctx, id)
		},
		create: func(ctx context.Context, c *client.Client, req client.PostCreate) *client.Response[client.Post] {
			return c.CreatePost(ctx, req)
		},
		update: func(ctx context.Context, c *client.Client, id int, req client.PostUpdate) *client.Response[client.Post] {
			return c.UpdatePost(ctx, id, req)
		},
	})
	cmd.AddCommand(deleteCmd(f, "post", func(ctx context.Context, c *client.Client, id int) *client.Response[client.MessageResponse] {
		return c.DeletePost(ctx, id)
	}))
	return cmd
}

func newProductsCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Manage products"}

	var (
		page       client.Page
		categoryID int
		search     string
		inactive   bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := &client.ProductFilter{Search: search}
			if cmd.Flags().Changed("category-id") {
				filter.CategoryID = &categoryID
			}
			if inactive {
				activeOnly := false
				filter.ActiveOnly = &activeOnly
			}
			return run(cmd, f, "products list", func(ctx context.Context, c *client.Client) *client.Response[[]client.Product] {
				return c.ListProducts(ctx, &page, filter)
			})
		},
	}
	addPageFlags(list, &page)
	list.Flags().IntVar(&categoryID, "category-id", 0, "Only products in this category")
	list.Flags().StringVar(&search, "search", "", "Name search keyword")
	list.Flags().BoolVar(&inactive, "include-inactive", false, "Include inactive products")
	cmd.AddCommand(list)

	addCRUD(cmd, f, crud[client.Product, client.ProductCreate, client.ProductUpdate]{
		name: "product",
		get: func(ctx context.Context, c *client.Client, id int) *client.Response[client.Product] {
			return c.GetProduct(ctx, id)
		},
		create: func(ctx context.Context, c *client.Client, req client.ProductCreate) *client.Response[client.Product] {
			return c.CreateProduct(ctx, req)
		},
		update: func(ctx context.Context, c *client.Client, id int, req client.ProductUpdate) *client.Response[client.Product] {
			return c.UpdateProduct(ctx, id, req)
		},
	})
	cmd.AddCommand(deleteCmd(f, "product", func(ctx context.Context, c *client.Client, id int) *client.Response[client.Product] {
		return c.DeleteProduct(ctx, id)
	}))
	return cmd
}

func newCategoriesCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "categories", Short: "Manage categories"}

	var (
		page     client.Page
		parentID int
		inactive bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := &client.CategoryFilter{}
			if cmd.Flags().Changed("parent-id") {
				filter.ParentID = &parentID
			}
			if inactive {
				activeOnly := false
				filter.ActiveOnly = &activeOnly
			}
			return run(cmd, f, "categories list", func(ctx context.Context, c *client.Client) *client.Response[[]client.Category] {
				return c.ListCategories(ctx, &page, filter)
			})
		},
	}
	addPageFlags(list, &page)
	list.Flags().IntVar(&parentID, "parent-id", 0, "Only children of this category")
	list.Flags().BoolVar(&inactive, "include-inactive", false, "Include inactive categories")
	cmd.AddCommand(list)

	addCRUD(cmd, f, crud[client.Category, client.CategoryCreate, client.CategoryUpdate]{
		name: "category",
		get: func(ctx context.Context, c *client.Client, id int) *client.Response[client.Category] {
			return c.GetCategory(ctx, id)
		},
		create: func(ctx context.Context, c *client.Client, req client.CategoryCreate) *client.Response[client.Category] {
			return c.CreateCategory(ctx, req)
		},
		update: func(ctx context.Context, c *client.Client, id int, req client.CategoryUpdate) *client.Response[client.Category] {
			return c.UpdateCategory(ctx, id, req)
		},
	})
	cmd.AddCommand(deleteCmd(f, "category", func(ctx context.Context, c *client.Client, id int) *client.Response[client.Category] {
		return c.DeleteCategory(ctx, id)
	}))
	return cmd
}

func newOrdersCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "orders", Short: "Manage orders"}

	var (
		page   client.Page
		status string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := &client.OrderFilter{Status: client.OrderStatus(status)}
			return run(cmd, f, "orders list", func(ctx context.Context, c *client.Client) *client.Response[[]client.Order] {
				return c.ListOrders(ctx, &page, filter)
			})
		},
	}
	addPageFlags(list, &page)
	list.Flags().StringVar(&status, "status", "", "Only orders in this status (pending, paid, shipped, delivered, cancelled)")
	cmd.AddCommand(list)

	addCRUD(cmd, f, crud[client.Order, client.OrderCreate, client.OrderUpdate]{
		name: "order",
		get: func(ctx context.Context, c *client.Client, id int) *client.Response[client.Order] {
			return c.GetOrder(ctx, id)
		},
		create: func(ctx context.Context, c *client.Client, req client.OrderCreate) *client.Response[client.Order] {
			return c.CreateOrder(ctx, req)
		},
		update: func(ctx context.Context, c *client.Client, id int, req client.OrderUpdate) *client.Response[client.Order] {
			return c.UpdateOrder(ctx, id, req)
		},
	})
	cmd.AddCommand(deleteCmd(f, "order", func(ctx context.Context, c *client.Client, id int) *client.Response[client.Order] {
		return c.DeleteOrder(ctx, id)
	}))
	return cmd
}

func newStatsCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, "stats", func(ctx context.Context, c *client.Client) *client.Response[client.DashboardStats] {
				return c.DashboardStats(ctx)
			})
		},
	}
}
