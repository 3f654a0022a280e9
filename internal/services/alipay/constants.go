package alipay

// ProviderName is the registry id of this integration.
const ProviderName = "alipay"

// Provider endpoints per environment
const (
	ProdFormURL    = "https://www.alipay.com/cgi-bin/webscr"
	ProdRestURL    = "https://api.alipay.com/v1/oauth2/token"
	SandboxFormURL = "https://www.sandbox.alipay.com/cgi-bin/webscr"
	SandboxRestURL = "https://api.sandbox.alipay.com/v1/oauth2/token"
)

// Callback paths, relative to the configured base URL. They must match the
// routes registered in internal/routes.
const (
	ReturnPath = "/payment/alipay/dpn"
	NotifyPath = "/payment/alipay/ipn"
	CancelPath = "/payment/alipay/cancel"
)

// Notification statuses
const (
	StatusCompleted = "Completed"
	StatusProcessed = "Processed"
	StatusPending   = "Pending"
	StatusExpired   = "Expired"
)

// Layouts accepted for payment_date, tried in order.
var paymentDateLayouts = []string{
	"15:04:05 Jan 02, 2006 -0700",
	"15:04:05 Jan 2, 2006 -0700",
	"15:04:05 Jan 02, 2006 MST",
	"15:04:05 Jan 2, 2006 MST",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// paymentDateZones maps the zone abbreviations the provider sends to their
// offsets. time.Parse gives unknown abbreviations a zero offset.
var paymentDateZones = map[string]string{
	"PST": "-0800",
	"PDT": "-0700",
}
