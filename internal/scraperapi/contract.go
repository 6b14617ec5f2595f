package scraperapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// productOut is the subset of the structured Amazon product response we rely
// on. The API returns many more keys; they are ignored.
type productOut struct {
	Name    string   `json:"name" validate:"required"`
	Pricing Price    `json:"pricing" validate:"required"`
	Images  []string `json:"images" validate:"required,min=1,dive,required"`
}

// Price holds the "pricing" value as text. The API usually returns a
// formatted string such as "₹999" but numbers are accepted too.
type Price string

func (p *Price) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch vv := v.(type) {
	case nil:
		*p = ""
	case string:
		*p = Price(strings.TrimSpace(vv))
	case json.Number:
		*p = Price(vv.String())
	default:
		return fmt.Errorf("unsupported pricing value %s", b)
	}
	return nil
}

var contract = newContractValidator()

func newContractValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func decodeProduct(body []byte) (productOut, error) {
	var out productOut
	if err := json.Unmarshal(body, &out); err != nil {
		return productOut{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	out.Name = strings.TrimSpace(out.Name)
	for i := range out.Images {
		out.Images[i] = strings.TrimSpace(out.Images[i])
	}
	if err := validateProduct(out); err != nil {
		return productOut{}, err
	}
	return out, nil
}

func validateProduct(out productOut) error {
	err := contract.Struct(out)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	missing := make([]string, 0, len(verrs))
	seen := map[string]bool{}
	for _, fe := range verrs {
		field, _, _ := strings.Cut(fe.Field(), "[")
		if !seen[field] {
			seen[field] = true
			missing = append(missing, field)
		}
	}
	return fmt.Errorf("%w: missing %s", ErrIncompleteData, strings.Join(missing, ", "))
}
