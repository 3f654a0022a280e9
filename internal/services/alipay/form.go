package alipay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"paygate/internal/services/provider"
)

type customData struct {
	ReturnURL string `json:"return_url"`
}

// BuildRequest returns the hidden inputs of the redirect form.
func (p *Provider) BuildRequest(values provider.RequestValues) (provider.FormValues, error) {
	if p.settings.EmailAccount == "" || p.acquirer.CompanyName == "" {
		return nil, ErrMissingIdentity
	}

	form := provider.FormValues{
		"cmd":           "_xclick",
		"business":      p.settings.EmailAccount,
		"item_name":     fmt.Sprintf("%s: %s", p.acquirer.CompanyName, values.Reference),
		"item_number":   values.Reference,
		"amount":        values.Amount.StringFixed(2),
		"currency_code": values.Currency,
		"address1":      values.PartnerAddress,
		"city":          values.PartnerCity,
		"country":       values.PartnerCountry,
		"state":         values.PartnerState,
		"email":         values.PartnerEmail,
		"zip_code":      values.PartnerZip,
		"first_name":    values.PartnerFirstName,
		"last_name":     values.PartnerLastName,
		"alipay_return": p.joinURL(ReturnPath),
		"notify_url":    p.joinURL(NotifyPath),
		"cancel_return": p.joinURL(CancelPath),
	}

	if p.acquirer.FeesActive {
		form["handling"] = values.Fees.StringFixed(2)
	}

	if values.ReturnURL != "" {
		custom, err := encodeCustom(customData{ReturnURL: values.ReturnURL})
		if err != nil {
			return nil, fmt.Errorf("alipay: encode custom: %w", err)
		}
		form["custom"] = custom
	}

	return form, nil
}

// ReturnURL extracts the buyer return URL carried in the custom field.
func (p *Provider) ReturnURL(n provider.Notification) string {
	raw := n.Get("custom")
	if raw == "" {
		return ""
	}
	var data customData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return ""
	}
	return data.ReturnURL
}

func encodeCustom(data customData) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
