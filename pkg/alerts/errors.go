package alerts

import "errors"

var (
	ErrWebhookDisabled   = errors.New("webhook alerter is disabled")
	ErrWebhookCooldown   = errors.New("alert is within cooldown period")
	errInvalidJSON       = errors.New("invalid JSON generated")
	errWebhookStatus     = errors.New("webhook returned non-2xx status")
	errTemplateParse     = errors.New("template parsing failed")
	errTemplateExecution = errors.New("template execution failed")
)
