package alipay

import "errors"

var (
	ErrMissingSettings = errors.New("alipay: acquirer has no alipay settings")
	ErrMissingIdentity = errors.New("alipay: seller email and company name are required")
	ErrInvalidBaseURL  = errors.New("alipay: invalid base URL")
)
