package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/deepshiftai/invoicer-api/internal/config"
	"github.com/deepshiftai/invoicer-api/internal/domain/entity"
	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
	"github.com/deepshiftai/invoicer-api/internal/domain/repository"
	"github.com/deepshiftai/invoicer-api/pkg/apperror"
	"github.com/deepshiftai/invoicer-api/pkg/email"
	"github.com/deepshiftai/invoicer-api/pkg/money"
	openai "github.com/sashabaranov/go-openai"
)

// ReminderService drafts and sends payment reminder emails for overdue
// invoices. Generation runs at most once per document at a time; a second
// request while one is in flight is rejected rather than queued.
type ReminderService struct {
	registry repository.DocumentRegistry
	client   *openai.Client
	model    string
	emails   *email.EmailService
	company  config.CompanyConfig
	now      func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewReminderService creates a new reminder service
func NewReminderService(
	registry repository.DocumentRegistry,
	client *openai.Client,
	model string,
	emails *email.EmailService,
	company config.CompanyConfig,
) *ReminderService {
	return &ReminderService{
		registry: registry,
		client:   client,
		model:    model,
		emails:   emails,
		company:  company,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
}

// ReminderDraft is a generated reminder email.
type ReminderDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Generate drafts a reminder email for an overdue invoice.
func (s *ReminderService) Generate(ctx context.Context, id string) (*ReminderDraft, error) {
	doc, ok := s.registry.Find(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Document")
	}
	if doc.Type != enum.DocumentTypeInvoice || !doc.IsOverdue(s.now()) {
		return nil, apperror.NewBadRequestError("Reminders are only available for overdue invoices")
	}

	if !s.acquire(id) {
		return nil, apperror.NewConflictError("A reminder for this document is already being generated")
	}
	defer s.release(id)

	prompt := buildReminderPrompt(s.company.Name, &doc)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("reminder generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("reminder generation returned no choices")
	}

	subject, body := splitSubjectBody(resp.Choices[0].Message.Content, doc.Number)
	return &ReminderDraft{Subject: subject, Body: body}, nil
}

// Send generates a reminder, emails it to the customer and records the send
// date on the document.
func (s *ReminderService) Send(ctx context.Context, id string) (*entity.Document, error) {
	doc, ok := s.registry.Find(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Document")
	}
	if doc.Customer.Email == "" {
		return nil, apperror.NewBadRequestError("Customer has no email address")
	}

	draft, err := s.Generate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.emails.SendPlainText(doc.Customer.Email, draft.Subject, draft.Body); err != nil {
		return nil, err
	}

	// Re-read in case the document changed while the draft was generated.
	doc, ok = s.registry.Find(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Document")
	}
	doc.LastReminderSent = s.now().Format(entity.DateLayout)
	s.registry.Upsert(doc)
	return &doc, nil
}

func (s *ReminderService) acquire(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return false
	}
	s.inFlight[id] = struct{}{}
	return true
}

func (s *ReminderService) release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

// buildReminderPrompt assembles the generation prompt from document facts.
func buildReminderPrompt(companyName string, doc *entity.Document) string {
	return fmt.Sprintf(
		"Write a polite but firm payment reminder email for an overdue invoice.\n\n"+
			"Company: %s\n"+
			"Customer: %s\n"+
			"Invoice Number: %s\n"+
			"Amount Due: %s\n"+
			"Due Date: %s\n\n"+
			"The email should be professional, reference the invoice number and amount, "+
			"ask for prompt payment and offer to discuss payment options. "+
			"Start the reply with exactly this line:\n"+
			"Subject: Overdue Invoice Reminder: %s",
		companyName,
		doc.Customer.Name,
		doc.Number,
		money.FormatUSD(doc.Totals().GrandTotal),
		doc.DueDate,
		doc.Number,
	)
}

// splitSubjectBody separates the "Subject:" line from the rest of a generated
// email. Replies that ignore the format fall back to a fixed subject.
func splitSubjectBody(text, number string) (subject, body string) {
	text = strings.TrimSpace(text)
	if line, rest, ok := strings.Cut(text, "\n"); ok || strings.HasPrefix(text, "Subject:") {
		if strings.HasPrefix(line, "Subject:") {
			subject = strings.TrimSpace(strings.TrimPrefix(line, "Subject:"))
			body = strings.TrimSpace(rest)
			return subject, body
		}
	}
	return "Overdue Invoice Reminder: " + number, text
}
