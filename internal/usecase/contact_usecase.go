package usecase

import (
	"context"
	"errors"
	"time"

	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/email"
	"portfolio-contact-backend/pkg/logger"
	"portfolio-contact-backend/pkg/metrics"
	"portfolio-contact-backend/pkg/sanitize"
	"portfolio-contact-backend/pkg/security"
	"portfolio-contact-backend/pkg/validation"
)

type contactUsecase struct {
	validator *validation.ContactValidator
	composer  *email.Composer
	transport domain.MailTransport
	secLog    *security.SecurityLogger
}

// NewContactUsecase wires the submission pipeline around a single mail transport
func NewContactUsecase(
	validator *validation.ContactValidator,
	composer *email.Composer,
	transport domain.MailTransport,
	secLog *security.SecurityLogger,
) domain.ContactUsecase {
	if secLog == nil {
		secLog = security.DefaultLogger()
	}
	return &contactUsecase{
		validator: validator,
		composer:  composer,
		transport: transport,
		secLog:    secLog,
	}
}

// Process sanitizes, validates and composes the submission, then sends the
// owner notification followed by the sender confirmation. Only the owner
// send decides the outcome.
func (u *contactUsecase) Process(ctx context.Context, input domain.SubmissionInput) domain.DispatchOutcome {
	clean := sanitize.Submission(input)
	if fields := rewrittenFields(input, clean); len(fields) > 0 {
		for _, f := range fields {
			metrics.SanitizedFields.WithLabelValues(f).Inc()
		}
		u.secLog.LogSuspiciousInput(ctx, input.SourceIP, input.UserAgent, fields)
	}

	result := u.validator.Validate(clean)
	if !result.Valid() {
		primary, _ := result.Primary()
		fields := make([]string, 0, len(result.Violations))
		for _, v := range result.Violations {
			fields = append(fields, v.Field)
		}
		logger.Log.Info("Contact submission rejected", "field", primary.Field, "violations", len(result.Violations))
		u.secLog.LogValidationFailed(ctx, clean.Email, clean.SourceIP, clean.UserAgent, fields)
		metrics.Submissions.WithLabelValues("invalid").Inc()

		return domain.DispatchOutcome{
			FailureReason: primary.Message,
			Violations:    result.Violations,
			Err:           &domain.ValidationError{Violations: result.Violations},
		}
	}

	sub := result.Submission
	owner, confirmation := u.composer.Compose(sub)

	ownerID, err := u.send(ctx, domain.StageOwner, &owner)
	if err != nil {
		if errors.Is(err, domain.ErrMailNotConfigured) {
			logger.Log.Warn("Contact submission refused, mail transport not configured", "error", err)
			u.secLog.LogMailNotConfigured(ctx, sub.SourceIP, err.Error())
			metrics.Submissions.WithLabelValues("unavailable").Inc()
		} else {
			logger.Log.Error("Owner notification failed", "error", err)
			u.secLog.LogMailDeliveryFailed(ctx, string(domain.StageOwner), owner.To.Email, sub.SourceIP, err.Error())
			metrics.Submissions.WithLabelValues("failed").Inc()
		}

		return domain.DispatchOutcome{
			FailureReason: err.Error(),
			Err:           &domain.TransportError{Stage: domain.StageOwner, Reason: err.Error(), Err: err},
		}
	}

	outcome := domain.DispatchOutcome{
		Success:        true,
		OwnerMessageID: ownerID,
	}

	confirmationID, err := u.send(ctx, domain.StageConfirmation, &confirmation)
	if err != nil {
		// The owner already has the message; the sender just misses the receipt.
		logger.Log.Warn("Confirmation email failed", "error", err, "owner_message_id", ownerID)
		u.secLog.LogMailDeliveryFailed(ctx, string(domain.StageConfirmation), confirmation.To.Email, sub.SourceIP, err.Error())
		outcome.ConfirmationErr = &domain.TransportError{Stage: domain.StageConfirmation, Reason: err.Error(), Err: err}
	} else {
		outcome.ConfirmationMessageID = confirmationID
	}

	logger.Log.Info("Contact submission delivered",
		"owner_message_id", ownerID,
		"confirmation_message_id", outcome.ConfirmationMessageID,
	)
	metrics.Submissions.WithLabelValues("sent").Inc()
	return outcome
}

func (u *contactUsecase) send(ctx context.Context, stage domain.DispatchStage, p *domain.EmailPayload) (string, error) {
	logger.Log.Debug("Sending email", "stage", string(stage), "to", security.MaskEmail(p.To.Email))

	start := time.Now()
	id, err := u.transport.Send(ctx, p)
	metrics.SendDuration.WithLabelValues(string(stage)).Observe(time.Since(start).Seconds())

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.EmailsSent.WithLabelValues(string(stage), result).Inc()
	return id, err
}

// rewrittenFields lists the submission fields the sanitizer changed
func rewrittenFields(before, after domain.SubmissionInput) []string {
	var fields []string
	pairs := []struct {
		name      string
		old, next string
	}{
		{"name", before.Name, after.Name},
		{"email", before.Email, after.Email},
		{"subject", before.Subject, after.Subject},
		{"message", before.Message, after.Message},
		{"user_agent", before.UserAgent, after.UserAgent},
	}
	for _, p := range pairs {
		if p.old != p.next {
			fields = append(fields, p.name)
		}
	}
	return fields
}
