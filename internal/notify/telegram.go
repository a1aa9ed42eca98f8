package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"bayshore/server/internal/models"
)

// TelegramNotifier posts new-lead alerts to a Telegram chat so agents can
// respond while the prospect is still on the site. Failures are logged and
// never surface to the API caller.
type TelegramNotifier struct {
	logger   *logrus.Logger
	client   *http.Client
	botToken string
	chatID   string
}

func NewTelegramNotifier(logger *logrus.Logger, botToken, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		logger: logger,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		botToken: botToken,
		chatID:   chatID,
	}
}

// Enabled reports whether the notifier has a full configuration.
func (n *TelegramNotifier) Enabled() bool {
	return n.botToken != "" && n.chatID != ""
}

// NotifyNewLead formats and sends an alert for a freshly captured lead.
func (n *TelegramNotifier) NotifyNewLead(lead models.Lead) error {
	if !n.Enabled() {
		return nil
	}

	message := fmt.Sprintf("🏠 New lead: %s %s\nSource: %s (%s)\nEmail: %s",
		lead.FirstName, lead.LastName, lead.LeadSource, lead.LeadType, lead.Email)
	if lead.Phone != "" {
		message += "\nPhone: " + lead.Phone
	}
	if lead.PropertyInterest != "" {
		message += "\nInterested in: " + lead.PropertyInterest
	}
	if lead.Message != "" {
		message += "\n\n" + lead.Message
	}

	return n.sendMessage(message)
}

func (n *TelegramNotifier) sendMessage(message string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.botToken)
	payload := map[string]string{
		"chat_id": n.chatID,
		"text":    message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	resp, err := n.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		n.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("Telegram API returned an error")
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return nil
}
