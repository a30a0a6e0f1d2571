package stockproduct

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StockProduct is the record stored under a stock product id.
// The id itself is the world state key and never part of the body.
type StockProduct struct {
	StockID              string  `json:"stockId"`
	ProductID            string  `json:"productId"`
	Amount               float64 `json:"amount"`
	TotalSales           float64 `json:"totalSales"`
	TransactionCompleted bool    `json:"transactionCompleted"`
}

// Fields holds the raw transaction arguments of a create or update.
type Fields struct {
	StockID              string `json:"stockId"`
	ProductID            string `json:"productId"`
	Amount               string `json:"amount" validate:"required,finitefloat"`
	TotalSales           string `json:"totalSales" validate:"required,finitefloat"`
	TransactionCompleted string `json:"transactionCompleted"`
}

var validate = newValidator()

var validationReasons = map[string]string{
	"required":    "must not be empty",
	"finitefloat": "not a finite number",
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("finitefloat", isFiniteFloat); err != nil {
		panic(err)
	}
	return v
}

// isFiniteFloat accepts what parseNumber can turn into a JSON number;
// encoding/json cannot represent NaN or infinities.
func isFiniteFloat(fl validator.FieldLevel) bool {
	v, err := parseNumber(fl.Field().String())
	return err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Coerce converts the raw arguments into a record. Only the exact string
// "true" marks the transaction as completed.
func (f Fields) Coerce() (StockProduct, error) {
	if err := validate.Struct(f); err != nil {
		return StockProduct{}, toValidationError(err)
	}

	amount, _ := parseNumber(f.Amount)
	totalSales, _ := parseNumber(f.TotalSales)

	return StockProduct{
		StockID:              f.StockID,
		ProductID:            f.ProductID,
		Amount:               amount,
		TotalSales:           totalSales,
		TransactionCompleted: f.TransactionCompleted == "true",
	}, nil
}

// Marshal serializes the record into its world state representation.
func (p StockProduct) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

func validateID(id string) error {
	if id == "" {
		return &ValidationError{Field: "stockProductId", Reason: "must not be empty"}
	}
	return nil
}

func parseNumber(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func toValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		reason, ok := validationReasons[fe.Tag()]
		if !ok {
			reason = "failed on " + fe.Tag()
		}
		return &ValidationError{Field: fe.Field(), Value: fmt.Sprint(fe.Value()), Reason: reason}
	}
	return &ValidationError{Field: "arguments", Reason: err.Error()}
}
