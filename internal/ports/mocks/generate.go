//go:generate mockgen -source=../customer_repository.go -destination=./mock_customer_repository.go -package=mocks
//go:generate mockgen -source=../product_repository.go  -destination=./mock_product_repository.go  -package=mocks
//go:generate mockgen -source=../order_repository.go    -destination=./mock_order_repository.go    -package=mocks
//go:generate mockgen -source=../order_cache.go         -destination=./mock_order_cache.go         -package=mocks
//go:generate mockgen -source=../validator.go           -destination=./mock_validator.go           -package=mocks
//go:generate mockgen -source=../logger.go              -destination=./mock_logger.go              -package=mocks
//go:generate mockgen -source=../event_publisher.go     -destination=./mock_event_publisher.go     -package=mocks
//go:generate mockgen -source=../services.go            -destination=./mock_services.go            -package=mocks

package mocks
