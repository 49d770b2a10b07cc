// coffeectl is the terminal front-end of the coffee store back-office. It
// drives the same controllers the admin pages use: list tables, detail
// views, edit forms, delete confirmations and the most-popular panel.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/ragnar-alan/coffeStoreAPI/internal/adminclient"
)

const usage = `usage: coffeectl [-addr URL] <command>

commands:
  orders list
  orders show   -number ORDER
  orders edit   -number ORDER [-orderer NAME] [-line DRINK:TOPPING,..:PRICE]...
  orders delete -number ORDER
  products list
  products show    -id ID
  products create  -name NAME -type TYPE -price EUROS
  products edit    -id ID [-name NAME] [-type TYPE] [-price EUROS]
  products delete  -id ID
  products popular
`

func main() {
	addr := flag.String("addr", envOr("COFFEESTORE_ADDR", "http://localhost:8080"), "admin api base url")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}

	client, err := adminclient.NewClient(*addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -addr:", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := &cli{
		client:   client,
		notifier: adminclient.NewWriterNotifier(os.Stderr),
	}

	var runErr error
	switch args[0] + " " + args[1] {
	case "orders list":
		app.ordersList(ctx)
	case "orders show":
		runErr = app.ordersShow(ctx, args[2:])
	case "orders edit":
		runErr = app.ordersEdit(ctx, args[2:])
	case "orders delete":
		runErr = app.ordersDelete(ctx, args[2:])
	case "products list":
		app.productsList(ctx)
	case "products show":
		runErr = app.productsShow(ctx, args[2:])
	case "products create":
		runErr = app.productsCreate(ctx, args[2:])
	case "products edit":
		runErr = app.productsEdit(ctx, args[2:])
	case "products delete":
		runErr = app.productsDelete(ctx, args[2:])
	case "products popular":
		app.productsPopular(ctx)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

type cli struct {
	client   *adminclient.Client
	notifier adminclient.Notifier
}

/* ================= orders ================= */

func (a *cli) ordersController(sink func(adminclient.TableUpdate[adminclient.OrderRow])) *adminclient.OrdersController {
	return adminclient.NewOrdersController(a.client, sink, a.notifier)
}

func (a *cli) ordersList(ctx context.Context) {
	ctrl := a.ordersController(func(u adminclient.TableUpdate[adminclient.OrderRow]) {
		switch u.State {
		case adminclient.StatePopulated:
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tORDERER\tSTATUS\tTOTAL")
			for _, row := range u.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.OrderNumber, row.Orderer, row.Status, row.Total)
			}
			_ = w.Flush()
		case adminclient.StateEmpty:
			fmt.Println("No orders found.")
		case adminclient.StateError:
			fmt.Println(u.Message)
		}
	})
	ctrl.Refresh(ctx)
}

func (a *cli) ordersShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders show", flag.ExitOnError)
	number := fs.String("number", "", "order number")
	_ = fs.Parse(args)
	if *number == "" {
		fs.Usage()
		return fmt.Errorf("-number is required")
	}

	ctrl := a.ordersController(func(adminclient.TableUpdate[adminclient.OrderRow]) {})
	detail, err := ctrl.ViewOrder(ctx, *number)
	if err != nil {
		return err
	}

	fmt.Printf("Order Number: %s\nOrderer:      %s\nStatus:       %s\n", detail.OrderNumber, detail.Orderer, detail.Status)
	fmt.Printf("Subtotal:     %s\nTotal:        %s\nCurrency:     %s\n", detail.Subtotal, detail.Total, detail.Currency)
	fmt.Println("Order Lines:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, line := range detail.Lines {
		fmt.Fprintf(w, "  %s\t%s\n", line.Description, line.Price)
	}
	_ = w.Flush()
	if len(detail.Discounts) > 0 {
		fmt.Println("Applied Discounts:")
		for _, d := range detail.Discounts {
			fmt.Println("  " + d)
		}
	}
	return nil
}

// lineFlags collects repeated -line flags, each "DRINK:TOPPING,..:PRICE".
type lineFlags []adminclient.OrderLineForm

func (l *lineFlags) String() string { return fmt.Sprintf("%d lines", len(*l)) }

func (l *lineFlags) Set(value string) error {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) != 3 {
		return fmt.Errorf("expected DRINK:TOPPING,..:PRICE, got %q", value)
	}
	var toppings []string
	if parts[1] != "" {
		toppings = strings.Split(parts[1], ",")
	}
	*l = append(*l, adminclient.OrderLineForm{
		Drink:    strings.ToUpper(parts[0]),
		Toppings: toppings,
		Price:    parts[2],
	})
	return nil
}

func (a *cli) ordersEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders edit", flag.ExitOnError)
	number := fs.String("number", "", "order number")
	orderer := fs.String("orderer", "", "new orderer name")
	var lines lineFlags
	fs.Var(&lines, "line", "order line, repeatable (DRINK:TOPPING,..:PRICE)")
	_ = fs.Parse(args)
	if *number == "" {
		fs.Usage()
		return fmt.Errorf("-number is required")
	}

	ctrl := a.ordersController(func(adminclient.TableUpdate[adminclient.OrderRow]) {})
	form, err := ctrl.EditOrder(ctx, *number)
	if err != nil {
		return err
	}

	if *orderer != "" {
		form.Orderer = *orderer
	}
	if len(lines) > 0 {
		form.Lines = lines
	}
	return ctrl.SaveOrder(ctx, form)
}

func (a *cli) ordersDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders delete", flag.ExitOnError)
	number := fs.String("number", "", "order number")
	_ = fs.Parse(args)
	if *number == "" {
		fs.Usage()
		return fmt.Errorf("-number is required")
	}

	ctrl := a.ordersController(func(adminclient.TableUpdate[adminclient.OrderRow]) {})
	ctrl.RequestDelete(*number)
	if !confirm(fmt.Sprintf("Delete order %s?", *number)) {
		ctrl.CancelDelete()
		return nil
	}
	return ctrl.ConfirmDelete(ctx)
}

/* ================= products ================= */

func (a *cli) productsController(sink func(adminclient.TableUpdate[adminclient.ProductRow])) *adminclient.ProductsController {
	return adminclient.NewProductsController(a.client, sink, a.notifier)
}

func (a *cli) productsList(ctx context.Context) {
	ctrl := a.productsController(func(u adminclient.TableUpdate[adminclient.ProductRow]) {
		switch u.State {
		case adminclient.StatePopulated:
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tPRICE")
			for _, row := range u.Rows {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", row.ID, row.Name, row.Type, row.Price)
			}
			_ = w.Flush()
		case adminclient.StateEmpty:
			fmt.Println("No products found.")
		case adminclient.StateError:
			fmt.Println(u.Message)
		}
	})
	ctrl.Refresh(ctx)
}

func (a *cli) productsShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products show", flag.ExitOnError)
	id := fs.Int64("id", 0, "product id")
	_ = fs.Parse(args)
	if *id == 0 {
		fs.Usage()
		return fmt.Errorf("-id is required")
	}

	ctrl := a.productsController(func(adminclient.TableUpdate[adminclient.ProductRow]) {})
	form, err := ctrl.EditProduct(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("ID:    %d\nName:  %s\nType:  %s\nPrice: €%s\n", form.ID, form.Name, form.Type, form.Price)
	return nil
}

func (a *cli) productsCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products create", flag.ExitOnError)
	name := fs.String("name", "", "product name")
	typ := fs.String("type", "", "product type")
	price := fs.String("price", "", "price in euros, e.g. 3.50")
	_ = fs.Parse(args)

	ctrl := a.productsController(func(adminclient.TableUpdate[adminclient.ProductRow]) {})
	form := ctrl.NewProduct()
	form.Name = *name
	form.Type = *typ
	form.Price = *price
	return ctrl.SaveProduct(ctx, form)
}

func (a *cli) productsEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products edit", flag.ExitOnError)
	id := fs.Int64("id", 0, "product id")
	name := fs.String("name", "", "new product name")
	typ := fs.String("type", "", "new product type")
	price := fs.String("price", "", "new price in euros")
	_ = fs.Parse(args)
	if *id == 0 {
		fs.Usage()
		return fmt.Errorf("-id is required")
	}

	ctrl := a.productsController(func(adminclient.TableUpdate[adminclient.ProductRow]) {})
	form, err := ctrl.EditProduct(ctx, *id)
	if err != nil {
		return err
	}
	if *name != "" {
		form.Name = *name
	}
	if *typ != "" {
		form.Type = *typ
	}
	if *price != "" {
		form.Price = *price
	}
	return ctrl.SaveProduct(ctx, form)
}

func (a *cli) productsDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "product id")
	_ = fs.Parse(args)
	if *id == 0 {
		fs.Usage()
		return fmt.Errorf("-id is required")
	}

	ctrl := a.productsController(func(adminclient.TableUpdate[adminclient.ProductRow]) {})
	ctrl.RequestDelete(*id)
	if !confirm(fmt.Sprintf("Delete product %d?", *id)) {
		ctrl.CancelDelete()
		return nil
	}
	return ctrl.ConfirmDelete(ctx)
}

func (a *cli) productsPopular(ctx context.Context) {
	ctrl := a.productsController(func(adminclient.TableUpdate[adminclient.ProductRow]) {})
	panel := ctrl.Popular(ctx)
	fmt.Println("Most Popular Drink:   " + panel.Drink)
	fmt.Println("Most Popular Topping: " + panel.Topping)
}

/* ================= helpers ================= */

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	_, _ = fmt.Scanln(&answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
