package service

import (
	"context"

	"go.uber.org/zap"

	"infracore/internal/errors"
	"infracore/internal/model"
	"infracore/internal/notify"
	"infracore/internal/repository"
)

// branchRecipients maps a contact form branch to its email recipients.
// Unknown branches fall through to just the owner address.
var branchRecipients = map[string][]string{
	"BENGALURU":  {"kkshetty@ashainfracore.com"},
	"SHIVAMOGGA": {"kkshetty@ashainfracore.com"},
	"MANGALURU":  {"kkshetty@ashainfracore.com"},
}

// NotificationDispatcher implements LeadDispatcher against email and push
// channels gated by the stored notification settings.
type NotificationDispatcher struct {
	settings   repository.SettingsRepository
	mailer     notify.Mailer
	push       *notify.Broadcaster
	ownerEmail string
	quoteEmail string
}

var _ LeadDispatcher = (*NotificationDispatcher)(nil)

// NewNotificationDispatcher creates a dispatcher. ownerEmail is appended to
// the contact recipient set; quoteEmail receives quote submissions.
func NewNotificationDispatcher(
	settings repository.SettingsRepository,
	mailer notify.Mailer,
	push *notify.Broadcaster,
	ownerEmail, quoteEmail string,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		settings:   settings,
		mailer:     mailer,
		push:       push,
		ownerEmail: ownerEmail,
		quoteEmail: quoteEmail,
	}
}

// ContactCaptured fans the contact submission out to email and push. Only a
// failed settings read is returned as an error; individual delivery failures
// are logged and swallowed.
func (d *NotificationDispatcher) ContactCaptured(ctx context.Context, msg *model.ContactMessage) error {
	settings, err := d.settings.Get(ctx)
	if err != nil {
		zap.S().Errorw("fetch notification settings", "error", err)
		return errors.ErrSettingsUnavailable
	}

	if settings.EmailNotifications && settings.GetInTouch {
		recipients := append(append([]string{}, branchRecipients[msg.Branch]...), d.ownerEmail)
		if len(branchRecipients[msg.Branch]) == 0 {
			zap.S().Warnw("no email mapping for branch", "branch", msg.Branch)
		}
		body, err := notify.RenderContactEmail(msg)
		if err != nil {
			zap.S().Errorw("render contact email", "error", err)
		} else if err := d.mailer.Send(recipients, "New Contact Form Submission", body); err != nil {
			zap.S().Errorw("send contact email", "recipients", recipients, "error", err)
		}
	}

	if settings.DesktopNotifications && settings.GetInTouch {
		sent := d.push.Broadcast(ctx, notify.PushPayload{
			Title: "New Contact Message",
			Body:  msg.FirstName + " " + msg.LastName + " from " + msg.Branch + " just submitted the contact form.",
			URL:   "/admin-dashboard",
		})
		zap.S().Infow("contact push fan-out complete", "delivered", sent)
	}

	return nil
}

// QuoteCaptured fans the quote submission out to email and push.
func (d *NotificationDispatcher) QuoteCaptured(ctx context.Context, quotation *model.Quotation) error {
	settings, err := d.settings.Get(ctx)
	if err != nil {
		zap.S().Errorw("fetch notification settings", "error", err)
		return errors.ErrSettingsUnavailable
	}

	if settings.EmailNotifications && settings.GetQuote {
		body, err := notify.RenderQuoteEmail(quotation)
		if err != nil {
			zap.S().Errorw("render quote email", "error", err)
		} else if err := d.mailer.Send([]string{d.quoteEmail}, "New Get a Quote Form Submission", body); err != nil {
			zap.S().Errorw("send quote email", "error", err)
		}
	}

	if settings.DesktopNotifications && settings.GetQuote {
		sent := d.push.Broadcast(ctx, notify.PushPayload{
			Title: "New Quote Request",
			Body:  quotation.ClientName + " submitted a new quote request.",
			URL:   "/admin-dashboard",
		})
		zap.S().Infow("quote push fan-out complete", "delivered", sent)
	}

	return nil
}
