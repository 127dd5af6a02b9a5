package alerts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mfreeman451/streamdash/pkg/models"
	"github.com/mfreeman451/streamdash/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEvaluator(s store.Service, alerters ...AlertService) *Evaluator {
	e := NewEvaluator(s, EvaluatorConfig{
		LagThreshold:  500,
		DiskThreshold: 85,
		Cooldown:      time.Minute,
	}, alerters...)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	return e
}

func TestEvaluator_EvaluateNodes(t *testing.T) {
	s := store.New()
	e := newTestEvaluator(s)

	nodes := []models.ClusterNode{
		{ID: "node-1", Hostname: "nexus-1", Status: models.NodeHealthy, Disk: 20},
		{ID: "node-2", Hostname: "nexus-2", Status: models.NodeCritical, Disk: 20},
		{ID: "node-3", Hostname: "nexus-3", Status: models.NodeWarning, Disk: 92.5},
	}

	raised := e.EvaluateNodes(context.Background(), nodes)
	require.Len(t, raised, 2)

	assert.Equal(t, TitleNodeOffline, raised[0].Title)
	assert.Equal(t, models.SeverityCritical, raised[0].Severity)
	assert.Equal(t, "node-2", raised[0].Source)
	assert.NotEmpty(t, raised[0].ID)

	assert.Equal(t, TitleDiskLow, raised[1].Title)
	assert.Equal(t, "node-3", raised[1].Source)

	alerts := s.Alerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, raised[1].ID, alerts[0].ID, "newest alert first")
}

func TestEvaluator_EvaluateTopics(t *testing.T) {
	s := store.New()
	e := newTestEvaluator(s)

	topics := []models.Topic{{
		Name: "user-events",
		ConsumerGroups: []models.ConsumerGroup{
			{ID: "consumer-group-1", Lag: 10},
			{ID: "consumer-group-2", Lag: 750, Coordinator: "node-4"},
		},
	}}

	raised := e.EvaluateTopics(context.Background(), topics)
	require.Len(t, raised, 1)
	assert.Equal(t, TitleConsumerLag, raised[0].Title)
	assert.Equal(t, "user-events/consumer-group-2", raised[0].Source)
	assert.Contains(t, raised[0].Message, "750")
}

func TestEvaluator_Cooldown(t *testing.T) {
	s := store.New()
	e := newTestEvaluator(s)

	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := start
	e.now = func() time.Time { return now }

	nodes := []models.ClusterNode{{ID: "node-2", Status: models.NodeCritical}}

	assert.Len(t, e.EvaluateNodes(context.Background(), nodes), 1)

	now = start.Add(30 * time.Second)
	assert.Empty(t, e.EvaluateNodes(context.Background(), nodes))

	now = start.Add(2 * time.Minute)
	assert.Len(t, e.EvaluateNodes(context.Background(), nodes), 1)

	assert.Len(t, s.Alerts(), 2)
}

func TestEvaluator_ForwardsToAlerters(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		alertErr error
	}{
		{name: "delivered", enabled: true},
		{name: "cooldown is ignored", enabled: true, alertErr: ErrWebhookCooldown},
		{name: "delivery failure is logged", enabled: true, alertErr: errors.New("connection refused")},
		{name: "disabled alerter skipped", enabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAlerter := NewMockAlertService(ctrl)
			mockAlerter.EXPECT().IsEnabled().Return(tt.enabled)

			if tt.enabled {
				mockAlerter.EXPECT().
					Alert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, alert *WebhookAlert) error {
						assert.Equal(t, models.SeverityCritical, alert.Level)
						assert.Equal(t, TitleNodeOffline, alert.Title)
						assert.Equal(t, "node-7", alert.Source)
						assert.Equal(t, "nexus-7", alert.Details["hostname"])

						return tt.alertErr
					})
			}

			s := store.New()
			e := newTestEvaluator(s, mockAlerter)

			raised := e.EvaluateNodes(context.Background(), []models.ClusterNode{
				{ID: "node-7", Hostname: "nexus-7", Status: models.NodeCritical},
			})

			assert.Len(t, raised, 1)
			assert.Len(t, s.Alerts(), 1)
		})
	}
}

func TestEvaluator_RaiseKeepsExplicitFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockService(ctrl)
	ts := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	mockStore.EXPECT().AddAlert(models.Alert{
		ID:        "alert-custom",
		Title:     "Replication Failed",
		Severity:  models.SeverityError,
		Timestamp: ts,
		Source:    "payment-transactions",
	})

	e := newTestEvaluator(mockStore)

	a, ok := e.Raise(context.Background(), models.Alert{
		ID:        "alert-custom",
		Title:     "Replication Failed",
		Severity:  models.SeverityError,
		Timestamp: ts,
		Source:    "payment-transactions",
	}, nil)

	require.True(t, ok)
	assert.Equal(t, "alert-custom", a.ID)
}

func TestEvaluator_RetentionCap(t *testing.T) {
	s := store.New()
	for i := 0; i < 50; i++ {
		s.AddAlert(models.Alert{ID: fmt.Sprintf("seed-%d", i)})
	}

	e := NewEvaluator(s, EvaluatorConfig{
		LagThreshold:  900,
		DiskThreshold: 85,
		Cooldown:      5 * time.Minute,
		MaxRetained:   120,
	})

	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := start
	e.now = func() time.Time { return now }

	topics := make([]models.Topic, 0, 20)
	for i := 0; i < 20; i++ {
		topics = append(topics, models.Topic{
			Name: fmt.Sprintf("topic-%d", i),
			ConsumerGroups: []models.ConsumerGroup{
				{ID: "consumer-group-1", Lag: 950},
				{ID: "consumer-group-2", Lag: 990},
			},
		})
	}

	nodes := []models.ClusterNode{
		{ID: "node-1", Status: models.NodeCritical, Disk: 95},
		{ID: "node-2", Status: models.NodeWarning, Disk: 91},
	}

	// a simulated day of refreshes, each past the cooldown
	for i := 0; i < 288; i++ {
		now = start.Add(time.Duration(i) * 5 * time.Minute)

		e.EvaluateNodes(context.Background(), nodes)
		e.EvaluateTopics(context.Background(), topics)

		require.LessOrEqual(t, len(s.Alerts()), 120)
	}

	alerts := s.Alerts()
	require.Len(t, alerts, 120)

	for _, a := range alerts {
		assert.NotContains(t, a.ID, "seed-", "oldest alerts are dropped first")
	}
}

func TestEvaluator_RaiseTrimsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockService(ctrl)

	gomock.InOrder(
		mockStore.EXPECT().AddAlert(gomock.Any()),
		mockStore.EXPECT().TrimAlerts(10).Return(1),
	)

	e := NewEvaluator(mockStore, EvaluatorConfig{Cooldown: time.Minute, MaxRetained: 10})

	_, ok := e.Raise(context.Background(), models.Alert{Title: TitleNodeOffline, Source: "node-1"}, nil)
	require.True(t, ok)
}
