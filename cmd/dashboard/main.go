// Command dashboard is a terminal front-end for the studio order workflow.
// It drives the same view-models a graphical dashboard would: the order list
// with its fallback cache and the conversation of the selected order.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ryazanov/inkstudio/internal/dashboard"
	"github.com/ryazanov/inkstudio/internal/fallback"
	"github.com/ryazanov/inkstudio/internal/localstore"
	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/ryazanov/inkstudio/internal/remote"
	"go.uber.org/zap"
)

const usage = `usage: dashboard [flags] command [args]

commands:
  register <email> <password> <name>
  login <email> <password>
  logout
  orders
  watch [interval_seconds]
  create <service_type> <description>
  chat <order_id>
  send <order_id> <text>
  price <order_id> <price>
  pay <order_id> <online|cash>
`

func main() {
	var (
		serverURL string
		statePath string
		logLevel  string
	)

	defaultState := filepath.Join(os.Getenv("HOME"), ".inkstudio", "dashboard.json")

	flag.StringVar(&serverURL, "s", "http://localhost:8080", "studio server address")
	flag.StringVar(&statePath, "f", defaultState, "local state file")
	flag.StringVar(&logLevel, "l", "warn", "log level")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	loggerLvl, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		log.Fatalf("Error parsing log level: %v", err)
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl
	logger, err := loggerCfg.Build()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	app := app{
		store:    localstore.New(statePath),
		auth:     remote.NewAuthClient(serverURL + "/api/auth"),
		orderURL: serverURL + "/api/orders",
		msgURL:   serverURL + "/api/messages",
		logger:   logger,
	}
	app.sessions = dashboard.NewSessionStore(app.store)

	if err := app.run(context.Background(), flag.Args()); err != nil {
		if models.IsValidationError(err) {
			fmt.Fprintln(os.Stderr, "Ошибка:", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	store    *localstore.Store
	sessions *dashboard.SessionStore
	auth     *remote.AuthClient
	orderURL string
	msgURL   string
	logger   *zap.Logger
}

func (a *app) run(ctx context.Context, args []string) error {
	cmd, args := args[0], args[1:]

	switch cmd {
	case "register":
		if len(args) < 3 {
			return errors.New("register needs <email> <password> <name>")
		}
		return a.register(ctx, args[0], args[1], strings.Join(args[2:], " "))
	case "login":
		if len(args) < 2 {
			return errors.New("login needs <email> <password>")
		}
		return a.login(ctx, args[0], args[1])
	case "logout":
		return a.logout()
	case "orders":
		return a.listOrders(ctx)
	case "watch":
		return a.watch(ctx, args)
	case "create":
		if len(args) < 2 {
			return errors.New("create needs <service_type> <description>")
		}
		return a.createOrder(ctx, args[0], strings.Join(args[1:], " "))
	case "chat":
		if len(args) < 1 {
			return errors.New("chat needs <order_id>")
		}
		return a.chat(ctx, args[0])
	case "send":
		if len(args) < 2 {
			return errors.New("send needs <order_id> <text>")
		}
		return a.send(ctx, args[0], strings.Join(args[1:], " "))
	case "price":
		if len(args) < 2 {
			return errors.New("price needs <order_id> <price>")
		}
		return a.setPrice(ctx, args[0], args[1])
	case "pay":
		if len(args) < 2 {
			return errors.New("pay needs <order_id> <online|cash>")
		}
		return a.pay(ctx, args[0], args[1])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) register(ctx context.Context, email, password, name string) error {
	user, token, err := a.auth.Register(ctx, email, password, name)
	if err != nil {
		return err
	}
	return a.saveSession(user, token)
}

func (a *app) login(ctx context.Context, email, password string) error {
	user, token, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return a.saveSession(user, token)
}

func (a *app) saveSession(user *models.User, token string) error {
	sess := dashboard.Session{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		Token:  token,
	}
	if err := a.sessions.Init(sess); err != nil {
		return err
	}
	fmt.Printf("Здравствуйте, %s (%s)\n", user.Name, user.Role)
	return nil
}

func (a *app) logout() error {
	if err := fallback.NewCache(a.store).Clear(); err != nil {
		return err
	}
	return a.sessions.Clear()
}

// viewModels builds the order list and conversation for the stored session
func (a *app) viewModels() (*dashboard.OrderList, *dashboard.Conversation, error) {
	sess, err := a.sessions.Current()
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, errors.New("не выполнен вход, сначала выполните login")
	}

	cache := fallback.NewCache(a.store)
	orders := dashboard.NewOrderList(remote.NewOrderClient(a.orderURL), cache, *sess, a.logger)
	conv := dashboard.NewConversation(remote.NewMessageClient(a.msgURL), *sess, a.logger)
	orders.AttachConversation(conv)
	conv.AttachOrders(orders)

	return orders, conv, nil
}

func (a *app) listOrders(ctx context.Context) error {
	orders, _, err := a.viewModels()
	if err != nil {
		return err
	}

	printOrders(orders.LoadOrders(ctx))

	return nil
}

// watch keeps re-printing the order list until interrupted, so a running
// terminal follows server-side status changes.
func (a *app) watch(ctx context.Context, args []string) error {
	interval := 5 * time.Second
	if len(args) > 0 {
		secs, err := strconv.Atoi(args[0])
		if err != nil || secs <= 0 {
			return fmt.Errorf("bad interval %q", args[0])
		}
		interval = time.Duration(secs) * time.Second
	}

	orders, _, err := a.viewModels()
	if err != nil {
		return err
	}

	printOrders(orders.LoadOrders(ctx))

	refresher := dashboard.NewRefresher(orders, interval, a.logger)
	refresher.OnRefresh = printOrders

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	refresher.Run(ctx)

	return nil
}

func printOrders(orders []models.Order) {
	for _, order := range orders {
		price := "—"
		if order.Price != nil {
			price = strconv.FormatFloat(*order.Price, 'f', -1, 64)
		}
		fmt.Printf("#%d\t%s\t%s\t%s\t%s\n",
			order.ID, order.ServiceType, models.StatusLabel(order.Status), price,
			order.CreatedAt.Format("02.01.2006 15:04"))
	}
}

func (a *app) createOrder(ctx context.Context, serviceType, description string) error {
	orders, _, err := a.viewModels()
	if err != nil {
		return err
	}

	order, err := orders.CreateOrder(ctx, serviceType, description)
	if err != nil {
		return err
	}

	fmt.Printf("Заказ #%d создан (%s)\n", order.ID, models.StatusLabel(order.Status))
	return nil
}

func (a *app) chat(ctx context.Context, rawID string) error {
	orders, conv, err := a.viewModels()
	if err != nil {
		return err
	}

	orderID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("bad order id %q", rawID)
	}

	selectByID(ctx, orders, orderID)

	for _, msg := range conv.LoadMessages(ctx, orderID) {
		fmt.Printf("[%s] %s: %s\n", msg.CreatedAt.Format("15:04"), msg.SenderName, msg.Text)
	}

	return nil
}

func (a *app) send(ctx context.Context, rawID, text string) error {
	orders, conv, err := a.viewModels()
	if err != nil {
		return err
	}

	orderID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("bad order id %q", rawID)
	}

	selectByID(ctx, orders, orderID)

	conv.SetDraft(text)
	if err := conv.Send(ctx); err != nil {
		return fmt.Errorf("не удалось отправить сообщение: %w", err)
	}

	return nil
}

func (a *app) setPrice(ctx context.Context, rawID, rawPrice string) error {
	orders, _, err := a.viewModels()
	if err != nil {
		return err
	}

	orderID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("bad order id %q", rawID)
	}
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return fmt.Errorf("bad price %q", rawPrice)
	}

	orders.LoadOrders(ctx)
	if err := orders.SetPrice(ctx, orderID, price); err != nil {
		return err
	}

	fmt.Println("Цена выставлена. Клиент получит уведомление")
	return nil
}

func (a *app) pay(ctx context.Context, rawID, method string) error {
	orders, _, err := a.viewModels()
	if err != nil {
		return err
	}

	orderID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("bad order id %q", rawID)
	}

	orders.LoadOrders(ctx)
	if err := orders.SetPaymentMethod(ctx, orderID, method); err != nil {
		return err
	}

	if method == models.PaymentMethodOnline {
		fmt.Println("Заказ оплачен онлайн")
	} else {
		fmt.Println("Вы выбрали оплату наличными. Оплатите мастеру при встрече")
	}
	return nil
}

// selectByID selects the order in the list when it is present, loading its
// conversation along the way.
func selectByID(ctx context.Context, orders *dashboard.OrderList, orderID uint64) {
	for _, order := range orders.LoadOrders(ctx) {
		if order.ID == orderID {
			orders.Select(ctx, order)
			return
		}
	}
}
