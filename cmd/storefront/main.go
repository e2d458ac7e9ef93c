// Command storefront is the terminal storefront client: browse the catalog,
// manage the local cart, and place orders against the backend API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fjod/go_storefront/internal/api"
	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/config"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/imageutil"
)

const usage = `usage: storefront <command> [flags]

commands:
  products [-cat id] [-search term]   list products
  product <id>                        show one product
  add <productID> [-size S] [-qty N]  add a product to the cart
  cart                                show cart lines and totals
  update <lineKey> <quantity>         change a line's quantity
  remove <lineKey>                    remove a line
  clear                               empty the cart
  checkout                            place the order
  order <orderID>                     show a placed order
`

type app struct {
	cfg      *config.Config
	cart     *cart.Store
	views    *catalog.Views
	client   *api.Client
	checkout *checkout.Service
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	store := cart.NewStore(cart.NewFileStorage(cfg.CartFile), imageutil.Options{})

	a := &app{
		cfg:      cfg,
		cart:     store,
		views:    catalog.NewViews(catalog.NewService(client)),
		client:   client,
		checkout: checkout.NewService(store, client, cfg.TaxRate),
	}

	// All failures are handled here, at the action boundary: the user gets
	// a message and a non-zero exit, never a stack trace.
	if err := a.run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) run(command string, args []string) error {
	ctx := context.Background()

	switch command {
	case "products":
		return a.cmdProducts(ctx, args)
	case "product":
		return a.cmdProduct(ctx, args)
	case "add":
		return a.cmdAdd(ctx, args)
	case "cart":
		return a.cmdCart()
	case "update":
		return a.cmdUpdate(args)
	case "remove":
		return a.cmdRemove(args)
	case "clear":
		a.cart.Clear()
		fmt.Println("cart cleared")
		return nil
	case "checkout":
		return a.cmdCheckout(ctx)
	case "order":
		return a.cmdOrder(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) cmdProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	cat := fs.String("cat", "", "category id filter")
	search := fs.String("search", "", "search term")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view := a.views.Open()
	products, err := view.Products(ctx, *cat, *search)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Println("no products found")
		return nil
	}
	for _, p := range products {
		fmt.Printf("#%d  %-24s $%.2f  %s\n", p.ID, p.Name, p.Price, categoryLabel(p.CategoryID))
	}
	return nil
}

func (a *app) cmdProduct(ctx context.Context, args []string) error {
	id, err := parseID(args, "product id")
	if err != nil {
		return err
	}

	view := a.views.Open()
	p, err := view.Product(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("#%d %s\n$%.2f\n%s\nimage: %s\n", p.ID, p.Name, p.Price, p.Description, p.ImageURL)
	for _, s := range p.Sizes {
		status := fmt.Sprintf("%d in stock", s.Stock)
		if s.Stock == 0 {
			status = "out of stock"
		}
		fmt.Printf("  size %-4s %s\n", s.Size, status)
	}
	return nil
}

func (a *app) cmdAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("add needs a product id")
	}
	id, err := parseID(args[:1], "product id")
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("add", flag.ExitOnError)
	size := fs.String("size", "", "size variant")
	qty := fs.Int("qty", 1, "quantity")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	view := a.views.Open()
	p, err := view.Product(ctx, id)
	if err != nil {
		return err
	}

	chosen := *size
	if chosen == "" {
		chosen = p.FirstAvailableSize()
	}
	if chosen != "" && !p.SizeInStock(chosen) {
		return fmt.Errorf("size %s of %s is out of stock", chosen, p.Name)
	}

	a.cart.Add(*p, chosen, *qty)
	fmt.Printf("added %s to cart\n", p.Name)
	return nil
}

func (a *app) cmdCart() error {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("your cart is empty")
		return nil
	}

	for _, line := range lines {
		size := line.Size
		if size == "" {
			size = "-"
		}
		lineTotal := float64(line.UnitPriceCents*int64(line.Quantity)) / 100
		fmt.Printf("%-12s %-24s size %-4s x%-3d $%.2f\n",
			line.LineKey, line.Name, size, line.Quantity, lineTotal)
	}

	totals := a.checkout.Totals()
	fmt.Printf("\nsubtotal: $%s\ntax:      $%s\ntotal:    $%s\n",
		totals.Subtotal.StringFixed(2), totals.Tax.StringFixed(2), totals.GrandTotal.StringFixed(2))
	return nil
}

func (a *app) cmdUpdate(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("update needs a line key and a quantity")
	}
	a.cart.UpdateQuantity(args[0], cart.ParseQuantity(args[1]))
	return a.cmdCart()
}

func (a *app) cmdRemove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("remove needs a line key")
	}
	a.cart.Remove(args[0])
	return a.cmdCart()
}

func (a *app) cmdCheckout(ctx context.Context) error {
	orderID, err := a.checkout.PlaceOrder(ctx, a.cfg.UserID)
	if err != nil {
		return err
	}
	fmt.Printf("order placed: %s\n", orderID)
	return nil
}

func (a *app) cmdOrder(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("order needs an order id")
	}

	order, err := a.client.GetOrder(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("order #%s  $%.2f\n", order.ID, order.Amount)
	for _, item := range order.Cart.Items {
		size := "-"
		if item.Size != nil && *item.Size != "" {
			size = *item.Size
		}
		fmt.Printf("  product %d size %-4s x%d\n", item.ProductID, size, item.Quantity)
	}
	return nil
}

func parseID(args []string, what string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing %s", what)
	}
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, args[0])
	}
	return id, nil
}

func categoryLabel(id int64) string {
	if name, ok := domain.CategoryName[id]; ok {
		return name
	}
	return fmt.Sprintf("category %d", id)
}
