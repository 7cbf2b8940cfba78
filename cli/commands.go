// Package cli provides the Cobra-based CLI for bakeryctl.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bakeryctl/api"
	"bakeryctl/cart"
	"bakeryctl/checkout"
	"bakeryctl/domain"
	"bakeryctl/stats"
	"bakeryctl/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "bakeryctl",
		Short: "A command-line storefront for the bakery ordering backend",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject store and client
			if stateStore == nil || apiClient == nil {
				if cfg := viper.GetString("config"); cfg != "" {
					viper.SetConfigFile(cfg)
					if err := viper.ReadInConfig(); err != nil {
						return err
					}
				}

				lvlStr := strings.ToLower(viper.GetString("log-level"))
				lvl := slog.LevelInfo
				switch lvlStr {
				case "debug":
					lvl = slog.LevelDebug
				case "warn", "warning":
					lvl = slog.LevelWarn
				case "error":
					lvl = slog.LevelError
				}
				slog.SetDefault(slog.New(
					slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
				))

				var err error
				stateStore, err = store.NewStore(
					viper.GetString("state"),
					viper.GetString("state-file"),
				)
				if err != nil {
					return err
				}
				apiClient, err = api.New(
					viper.GetString("api-url"),
					viper.GetDuration("timeout"),
					nil,
					slog.Default(),
				)
				if err != nil {
					return err
				}
			}

			// every invocation is a fresh process: restore session, cart
			// and customer draft from the state store
			st, err := stateStore.Load(cmd.Context())
			if err != nil {
				return err
			}
			apiClient.RestoreCookies(st.Cookies)
			cartModel = cart.New()
			if err := cartModel.Restore(st.Cart); err != nil {
				return err
			}
			customerDraft = st.Customer
			return nil
		},
	}

	stateStore    domain.StateStore
	apiClient     *api.Client
	cartModel     *cart.Cart
	customerDraft domain.CustomerInfo
)

// saveState writes the cookies, cart and customer draft back to the store.
func saveState(cmd *cobra.Command) error {
	return stateStore.Save(cmd.Context(), domain.State{
		Cookies:  apiClient.Cookies(),
		Cart:     cartModel.Lines(),
		Customer: customerDraft,
	})
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("bakery> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("api-url", "http://localhost:8080", "backend base URL")
	rootCmd.PersistentFlags().String("state", "file", "state backend: file|memory")
	rootCmd.PersistentFlags().String("state-file", "data/state.json", "state file path")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("state", rootCmd.PersistentFlags().Lookup("state"))
	viper.BindPFlag("state-file", rootCmd.PersistentFlags().Lookup("state-file"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("BAKERY")
	viper.AutomaticEnv()

	// login
	var username, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the bakery backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return errors.New("username required")
			}
			if password == "" {
				fmt.Print("Password: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}
			start := time.Now()
			user, err := apiClient.Login(cmd.Context(), username, password)
			if err != nil {
				slog.Error("login failed", "username", username, "error", err)
				return err
			}
			slog.Info("login ok", "username", user.Username, "duration_ms", time.Since(start).Milliseconds())
			if err := saveState(cmd); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", user.Username)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&username, "username", "", "username")
	loginCmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)

	// logout
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and wipe local state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient.Logout(cmd.Context()); err != nil {
				return err
			}
			if err := stateStore.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
	rootCmd.AddCommand(logoutCmd)

	// whoami
	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := apiClient.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(user.Username)
			return nil
		},
	}
	rootCmd.AddCommand(whoamiCmd)

	// breads
	var breadsOutput string
	breadsCmd := &cobra.Command{
		Use:   "breads",
		Short: "List the bread catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			breads, err := apiClient.ListBreads(cmd.Context())
			if err != nil {
				return err
			}
			if breadsOutput == "json" {
				b, _ := json.MarshalIndent(breads, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, br := range breads {
				fmt.Printf("%d | %s | %.2f | %s\n", br.ID, br.Name, br.Price, br.Description)
			}
			return nil
		},
	}
	breadsCmd.Flags().StringVar(&breadsOutput, "output", "", "output format")
	rootCmd.AddCommand(breadsCmd)

	// cart
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the cart",
	}

	var addQuantity int
	cartAddCmd := &cobra.Command{
		Use:   "add <breadId>",
		Short: "Add a bread to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid bread id %q", args[0])
			}
			// name and price are resolved from the catalog at add time
			bread, err := apiClient.GetBread(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := cartModel.Add(bread.ID, bread.Name, bread.Price, addQuantity); err != nil {
				return err
			}
			if err := saveState(cmd); err != nil {
				return err
			}
			fmt.Printf("Added %d x %s (%d lines in cart)\n", addQuantity, bread.Name, cartModel.Len())
			return nil
		},
	}
	cartAddCmd.Flags().IntVar(&addQuantity, "quantity", 1, "quantity")
	cartCmd.AddCommand(cartAddCmd)

	cartShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := cartModel.Lines()
			if len(lines) == 0 {
				fmt.Println("Cart is empty")
				return nil
			}
			for _, l := range lines {
				fmt.Printf("%s | %d x %.2f = %.2f\n", l.Name, l.Quantity, l.Price, l.Subtotal())
			}
			fmt.Printf("Total: %.2f\n", cartModel.Total())
			return nil
		},
	}
	cartCmd.AddCommand(cartShowCmd)

	cartClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cartModel.Clear()
			if err := saveState(cmd); err != nil {
				return err
			}
			fmt.Println("Cart cleared")
			return nil
		},
	}
	cartCmd.AddCommand(cartClearCmd)
	rootCmd.AddCommand(cartCmd)

	// checkout
	var coName, coPhone, coAddress string
	checkoutCmd := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := domain.CustomerInfo{Name: coName, Phone: coPhone, Address: coAddress}
			// omitted flags fall back to the saved draft from a failed attempt
			if info.Name == "" {
				info.Name = customerDraft.Name
			}
			if info.Phone == "" {
				info.Phone = customerDraft.Phone
			}
			if info.Address == "" {
				info.Address = customerDraft.Address
			}

			sub := checkout.NewSubmitter(apiClient, cartModel)
			start := time.Now()
			order, err := sub.Submit(cmd.Context(), info)
			if err != nil {
				// keep the entered fields so a retry needs no re-typing
				customerDraft = info
				if saveErr := saveState(cmd); saveErr != nil {
					slog.Error("state save failed", "error", saveErr)
				}
				slog.Error("order submission failed", "error", err)
				return err
			}
			slog.Info("order created",
				"order_id", order.OrderID,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			customerDraft = domain.CustomerInfo{}
			if err := saveState(cmd); err != nil {
				return err
			}
			b, _ := json.MarshalIndent(order, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	checkoutCmd.Flags().StringVar(&coName, "name", "", "customer name")
	checkoutCmd.Flags().StringVar(&coPhone, "phone", "", "customer phone")
	checkoutCmd.Flags().StringVar(&coAddress, "address", "", "delivery address")
	rootCmd.AddCommand(checkoutCmd)

	// orders
	var ordersOutput string
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Show order history",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := apiClient.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			if ordersOutput == "json" {
				b, _ := json.MarshalIndent(orders, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			if len(orders) == 0 {
				fmt.Println("No orders yet")
				return nil
			}
			for _, o := range orders {
				fmt.Printf("#%d | %s | %s | %s | %.2f\n",
					o.OrderID, o.CustomerName,
					o.OrderDate.Format("2006-01-02 15:04"),
					o.Status, o.TotalAmount)
				for _, item := range o.Items {
					fmt.Printf("  %s | %d x %.2f = %.2f\n",
						item.BreadName, item.Quantity, item.Price, item.Subtotal)
				}
			}
			return nil
		},
	}
	ordersCmd.Flags().StringVar(&ordersOutput, "output", "", "output format")

	ordersStatusCmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Update an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			status := domain.OrderStatus(strings.ToUpper(args[1]))
			if !status.Valid() {
				return fmt.Errorf("invalid status %q (want NEW|IN_PROGRESS|COMPLETED|CANCELLED)", args[1])
			}
			order, err := apiClient.UpdateOrderStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(order, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	ordersCmd.AddCommand(ordersStatusCmd)
	rootCmd.AddCommand(ordersCmd)

	// stats
	var statsWindow, statsOutput string
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-bread sales statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := stats.ParseWindow(statsWindow)
			if err != nil {
				return err
			}
			orders, err := apiClient.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			breadStats := stats.Aggregate(orders, w, time.Now())
			summary := stats.Summarize(breadStats)

			if statsOutput == "json" {
				b, _ := json.MarshalIndent(struct {
					Summary stats.Summary       `json:"summary"`
					Breads  []stats.ProductStat `json:"breads"`
				}{summary, breadStats}, "", "  ")
				fmt.Println(string(b))
				return nil
			}

			fmt.Printf("Window: %s | sold: %d | revenue: %.2f | orders: %d | kinds: %d\n",
				w, summary.TotalQuantity, summary.TotalRevenue, summary.TotalOrders, summary.BreadKinds)
			if len(breadStats) == 0 {
				fmt.Println("No sales in the selected window")
				return nil
			}
			for _, st := range breadStats {
				share := "-"
				if summary.TotalRevenue > 0 {
					share = fmt.Sprintf("%.1f%%", st.RevenueShare)
				}
				fmt.Printf("%s | qty %d | revenue %.2f | orders %d | price %.2f | %s\n",
					st.BreadName, st.TotalQuantity, st.TotalRevenue,
					st.OrderCount, st.AveragePrice, share)
			}
			return nil
		},
	}
	statsCmd.Flags().StringVar(&statsWindow, "window", "all", "time window: all|today|week|month")
	statsCmd.Flags().StringVar(&statsOutput, "output", "", "output format")
	rootCmd.AddCommand(statsCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
