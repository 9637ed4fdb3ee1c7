package middleware

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Query shape used by the product listing endpoint.
type listQuery struct {
	Page     int     `validate:"gte=1"`
	PageSize int     `validate:"gte=1,lte=100"`
	Sort     string  `validate:"omitempty,oneof=newest price-asc price-desc popular name-asc name-desc"`
	MinPrice float64 `validate:"gte=0"`
}

func TestProperty_PageBoundsValidation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("page and pageSize outside bounds are rejected", prop.ForAll(
		func(page int, pageSize int) bool {
			q := listQuery{Page: page, PageSize: pageSize, Sort: "newest"}
			err := ValidateRequest(&q)

			valid := page >= 1 && pageSize >= 1 && pageSize <= 100
			if valid {
				return err == nil
			}
			return err != nil
		},
		gen.IntRange(-5, 10),
		gen.IntRange(-5, 200),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_SortEnumValidation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	known := []string{"newest", "price-asc", "price-desc", "popular", "name-asc", "name-desc"}

	properties.Property("known sort values pass, unknown ones fail", prop.ForAll(
		func(seed int, junk string) bool {
			if seed < 0 {
				seed = -seed
			}

			good := listQuery{Page: 1, PageSize: 24, Sort: known[seed%len(known)]}
			if err := ValidateRequest(&good); err != nil {
				return false
			}

			// Empty string is allowed (falls back to the default sort).
			empty := listQuery{Page: 1, PageSize: 24}
			if err := ValidateRequest(&empty); err != nil {
				return false
			}

			bad := listQuery{Page: 1, PageSize: 24, Sort: "zz-" + junk}
			return ValidateRequest(&bad) != nil
		},
		gen.Int(),
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_ValidationErrorsAreFormatted(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("validation errors include field information", prop.ForAll(
		func() bool {
			q := listQuery{Page: 0, PageSize: 500, Sort: "cheapest"}
			err := ValidateRequest(&q)
			if err == nil {
				return false
			}

			validationErrors := FormatValidationErrors(err)
			if len(validationErrors) != 3 {
				return false
			}

			for _, ve := range validationErrors {
				if ve.Field == "" || ve.Message == "" {
					return false
				}
			}

			return true
		},
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_NegativePriceIsRejected(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("minPrice below zero is rejected", prop.ForAll(
		func(price float64) bool {
			q := listQuery{Page: 1, PageSize: 24, MinPrice: price}
			err := ValidateRequest(&q)

			if price >= 0 {
				return err == nil
			}
			return err != nil
		},
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
