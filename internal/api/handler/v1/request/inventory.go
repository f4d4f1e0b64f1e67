package request

import (
	"encoding/json"
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// SKUs look like "APX-001": uppercase alphanumerics with dashes, at least one
// letter. The lookahead needs regexp2; stdlib regexp can't express it.
const skuRegexPattern = `^(?=.*[A-Z])[A-Z0-9-]{3,32}$`

var (
	skuRegex = regexp2.MustCompile(skuRegexPattern, regexp2.None)

	errInvalidSKU = errors.New("the sku must be 3-32 uppercase letters, digits or dashes, with at least one letter")
)

// Quantity tolerates sloppy client payloads: a missing or non-numeric value
// decodes as zero, which is also the create default.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		*q = 0

		return nil
	}

	*q = Quantity(n)

	return nil
}

type CreateItemRequest struct {
	SKU      string   `json:"sku"`
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
	Status   string   `json:"status"`
}

func (req *CreateItemRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.SKU, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Status, validation.Length(0, 50)),
	)
	if err != nil {
		return err
	}

	matched, err := skuRegex.MatchString(req.SKU)
	if err != nil || !matched {
		return errInvalidSKU
	}

	return nil
}

type AdjustQuantityRequest struct {
	Adjustment *int `json:"adjustment"`
}

func (req *AdjustQuantityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Adjustment, validation.NotNil),
	)
}
