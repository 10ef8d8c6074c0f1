package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/crm_backend/config"
	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/kafka"
	"github.com/Gunvolt24/crm_backend/internal/repo/postgres"
	"github.com/Gunvolt24/crm_backend/internal/usecase"
	"github.com/Gunvolt24/crm_backend/pkg/logger"
	"github.com/Gunvolt24/crm_backend/pkg/validate"
)

const (
	seedCustomers = 10
	seedProducts  = 5
	seedOrders    = 5
)

// Наполнение БД демо-данными. Идёт через прикладной слой,
// чтобы сработали те же валидации, что и в API.
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logg, cleanup, err := logger.NewZapLogger(false)
	if err != nil {
		panic(err)
	}
	defer func() { _ = cleanup() }()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		logg.Errorf(ctx, "failed to create postgres pool: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	customerService := usecase.NewCustomerService(postgres.NewCustomerRepository(pool), validate.NewCustomerValidator(), logg)
	productService := usecase.NewProductService(postgres.NewProductRepository(pool), validate.NewProductValidator(), logg)
	orderService := usecase.NewOrderService(
		postgres.NewOrderRepository(pool),
		postgres.NewCustomerRepository(pool),
		postgres.NewProductRepository(pool),
		nopCache{}, kafka.NopPublisher{}, logg,
	)

	faker := gofakeit.New(0)

	customers := make([]*domain.Customer, 0, seedCustomers)
	for i := 0; i < seedCustomers; i++ {
		customer, err := customerService.Create(ctx, domain.CreateCustomerInput{
			Name:  faker.Name(),
			Email: faker.Email(),
			Phone: faker.Numerify("+1 ###-###-####"),
		})
		if err != nil {
			logg.Warnf(ctx, "seed customer %d: %v", i+1, err)
			continue
		}
		customers = append(customers, customer)
	}

	products := make([]*domain.Product, 0, seedProducts)
	for i := 0; i < seedProducts; i++ {
		stock := faker.Number(0, 50)
		product, err := productService.Create(ctx, domain.CreateProductInput{
			Name:  faker.ProductName(),
			Price: decimal.NewFromFloat(faker.Price(1, 500)).Round(2),
			Stock: &stock,
		})
		if err != nil {
			logg.Warnf(ctx, "seed product %d: %v", i+1, err)
			continue
		}
		products = append(products, product)
	}

	if len(customers) == 0 || len(products) == 0 {
		logg.Errorf(ctx, "nothing to build orders from: %d customers, %d products", len(customers), len(products))
		os.Exit(1)
	}

	orders := 0
	for i := 0; i < seedOrders; i++ {
		n := faker.Number(1, 3)
		if n > len(products) {
			n = len(products)
		}
		order := indexes(len(products))
		faker.ShuffleInts(order)
		ids := make([]string, 0, n)
		for _, j := range order[:n] {
			ids = append(ids, products[j].ID)
		}

		customer := customers[faker.Number(0, len(customers)-1)]
		if _, err := orderService.Create(ctx, domain.CreateOrderInput{
			CustomerID: customer.ID,
			ProductIDs: ids,
		}); err != nil {
			logg.Warnf(ctx, "seed order %d: %v", i+1, err)
			continue
		}
		orders++
	}

	fmt.Printf("seeded: %d customers, %d products, %d orders\n", len(customers), len(products), orders)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// nopCache — при разовом наполнении кэш не нужен.
type nopCache struct{}

func (nopCache) Get(context.Context, string) (*domain.Order, bool) { return nil, false }
func (nopCache) Set(context.Context, *domain.Order) error          { return nil }
func (nopCache) WarmUp(context.Context, []*domain.Order) error     { return nil }
