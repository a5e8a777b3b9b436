package services

import "github.com/dimitrije/critterdex-api/internal/models"

// Notifier receives the presentation signals. Calls are made while the
// emitting component holds its lock, so implementations must not block. The
// snapshot is a private copy shared by all notifiers and must not be mutated.
type Notifier interface {
	SessionStateChanged(status models.SessionStatus)
	CollectionChanged(snapshot []models.CapturedAnimal)
}

type NopNotifier struct{}

func (NopNotifier) SessionStateChanged(models.SessionStatus) {}
func (NopNotifier) CollectionChanged([]models.CapturedAnimal) {}

// MultiNotifier fans every signal out to each notifier in order.
type MultiNotifier []Notifier

func (m MultiNotifier) SessionStateChanged(status models.SessionStatus) {
	for _, n := range m {
		n.SessionStateChanged(status)
	}
}

func (m MultiNotifier) CollectionChanged(snapshot []models.CapturedAnimal) {
	for _, n := range m {
		n.CollectionChanged(snapshot)
	}
}
