package e

import (
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = errors.New("transaction not found")

	// Ошибки оформления заказа. Текст показывается покупателю как есть.
	ErrCartEmpty              = errors.New("Корзина пуста")
	ErrCustomerNameRequired   = errors.New("Укажите ваше имя")
	ErrContactChannelRequired = errors.New("Выберите способ связи")
	ErrContactValueRequired   = errors.New("Укажите контакт для связи")
	ErrInvalidTelegram        = errors.New("Укажите Telegram в формате @username или ссылку t.me/username")
	ErrInvalidPhone           = errors.New("Укажите номер телефона: не менее 10 цифр")
	ErrProductNotFound        = errors.New("товар не найден")
	ErrInvalidQuantity        = errors.New("количество должно быть положительным целым числом")

	// Ошибки статусов заказа
	ErrUnknownOrderStatus  = errors.New("unknown order status")
	ErrInvalidStatusChange = errors.New("status change is not allowed")
	ErrOrderNotFound       = errors.New("order not found")

	// 400 Bad Request (админка)
	ErrProductNameRequired  = errors.New("product name is required")
	ErrPriceMustBePositive  = errors.New("price must be positive")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrPricePrecision       = errors.New("price must have at most 2 decimal places")
	ErrUnknownCurrency      = errors.New("unknown currency")
	ErrRateMustBePositive   = errors.New("exchange rate must be positive")
	ErrMissingFields        = errors.New("missing required fields")
	ErrExpectedMultipart    = errors.New("expected multipart/form-data")
	ErrTooManyImages        = errors.New("too many images")
	ErrNoImages             = errors.New("no images provided")
	ErrFileTooLarge         = errors.New("file too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidBody          = errors.New("invalid request body")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")

	ErrStatusBadRequest    = errors.New("bad request")
	ErrInternalServerError = errors.New("internal server error")

	ErrIncorrectEnvVariable = errors.New("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
