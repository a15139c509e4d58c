package notifier

import (
	"fmt"
	"log"
	"strings"

	"github.com/mfcayala/mpc-court/internal/schedule"
)

// Notifier abstracts the delivery channel (Email/LINE/Slack/SMS).
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier logs to stdout. Good enough until a real channel is
// wired up.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s\n", subject, message)
	return nil
}

// HumanSlotRange renders a block's slot IDs as "2026-08-29 18:00 - 19:30".
func HumanSlotRange(date string, slotIDs []string) string {
	if len(slotIDs) == 0 {
		return date
	}
	first, ok1 := schedule.SlotByID(slotIDs[0])
	last, ok2 := schedule.SlotByID(slotIDs[len(slotIDs)-1])
	if !ok1 || !ok2 {
		return fmt.Sprintf("%s %s", date, strings.Join(slotIDs, ","))
	}
	end := last.EndMinute()
	return fmt.Sprintf("%s %s - %02d:%02d", date, first.Label(), end/60, end%60)
}
