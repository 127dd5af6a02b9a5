package mockdata

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/mfreeman451/streamdash/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Source = (*Generator)(nil)

func newTestGenerator(now time.Time) *Generator {
	return New(
		WithRand(rand.New(rand.NewSource(42))), //nolint:gosec // deterministic test data
		WithClock(func() time.Time { return now }),
	)
}

func TestClusterNodes(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	nodes := newTestGenerator(now).ClusterNodes()

	require.Len(t, nodes, nodeCount)

	for i, n := range nodes {
		assert.Equal(t, i == 0, n.IsLeader, n.ID)
		assert.Contains(t, []models.NodeStatus{models.NodeHealthy, models.NodeWarning, models.NodeCritical}, n.Status)
		assert.True(t, strings.HasPrefix(n.Zone, n.Region))
		assert.True(t, strings.HasPrefix(n.Hostname, "nexus-"+n.Region))
		assert.GreaterOrEqual(t, n.CPU, 0.0)
		assert.Less(t, n.CPU, 100.0)
		assert.False(t, n.LastSeen.After(now))
		assert.True(t, n.LastSeen.After(now.Add(-time.Hour)) || n.LastSeen.Equal(now.Add(-time.Hour)))
		assert.Equal(t, brokerVersion, n.Version)
	}

	assert.Equal(t, "node-1", nodes[0].ID)
	assert.Equal(t, "nexus-us-east-1-a-001", nodes[0].Hostname)
}

func TestTopics(t *testing.T) {
	topics := newTestGenerator(time.Now()).Topics()

	require.Len(t, topics, len(topicNames))

	for i, topic := range topics {
		assert.Equal(t, topicNames[i], topic.Name)
		assert.GreaterOrEqual(t, topic.Partitions, 1)
		assert.LessOrEqual(t, topic.Partitions, 32)
		assert.GreaterOrEqual(t, topic.ReplicationFactor, 1)
		assert.LessOrEqual(t, topic.ReplicationFactor, 3)
		assert.NotEmpty(t, topic.ConsumerGroups)
		assert.LessOrEqual(t, len(topic.ConsumerGroups), 5)
		assert.True(t, strings.HasSuffix(topic.Size, " GB"))
	}
}

func TestAlerts(t *testing.T) {
	alerts := newTestGenerator(time.Now()).Alerts()

	require.Len(t, alerts, alertCount)

	seen := make(map[string]bool)

	for _, a := range alerts {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Severity)
	}
}

func TestMetricsTimeSeries(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		hours int
		want  int
	}{
		{name: "day", hours: 24, want: 25},
		{name: "zero", hours: 0, want: 1},
		{name: "negative", hours: -3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := newTestGenerator(now).MetricsTimeSeries(tt.hours)
			require.Len(t, series, tt.want)

			for i := 1; i < len(series); i++ {
				assert.True(t, series[i].Timestamp.After(series[i-1].Timestamp))
			}

			last := series[len(series)-1]
			assert.Equal(t, now, last.Timestamp)
			assert.Len(t, last.PartitionLag, 3)
			assert.GreaterOrEqual(t, last.MessagesPerSecond, 0.0)
			assert.InDelta(t, last.MessagesPerSecond*bytesPerMessage, last.BytesPerSecond, 1e-6)
		})
	}
}

func TestRealtimeMetrics(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	patch := newTestGenerator(now).RealtimeMetrics()

	require.NotNil(t, patch.Timestamp)
	require.NotNil(t, patch.MessagesPerSecond)
	require.NotNil(t, patch.LatencyMs)
	require.NotNil(t, patch.ErrorRate)

	assert.Equal(t, now, *patch.Timestamp)
	assert.Nil(t, patch.PartitionLag)
	assert.GreaterOrEqual(t, *patch.LatencyMs, minLatencyMs)
	assert.Less(t, *patch.ErrorRate, maxErrorRate)
}

func TestSecurityEvents(t *testing.T) {
	events := newTestGenerator(time.Now()).SecurityEvents()

	require.Len(t, events, securityCount)

	for _, e := range events {
		assert.Contains(t, securityUsers, e.User)
		assert.Contains(t, securityActions, e.Action)
		assert.True(t, strings.HasPrefix(e.IP, "192.168."))
	}
}

func TestUsers(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	users := newTestGenerator(now).Users()

	require.Len(t, users, len(userNames))

	wantRoles := []models.UserRole{
		models.RoleAdmin, models.RoleOperator, models.RoleViewer, models.RoleAdmin, models.RoleOperator,
	}

	for i, u := range users {
		assert.Equal(t, wantRoles[i], u.Role, u.ID)
		assert.Equal(t, userNames[i], u.Name)
		assert.NotEmpty(t, u.Permissions)
		assert.Equal(t, userPermissions[:len(u.Permissions)], u.Permissions)
		assert.False(t, u.LastLogin.After(now))
		assert.False(t, u.LastLogin.Before(now.Add(-7*day)))
	}

	assert.Equal(t, "user-1", users[0].ID)
	assert.Equal(t, "alice.johnson@nexus.io", users[0].Email)
	assert.Equal(t, "eve.brown@nexus.io", users[4].Email)
}

func TestAPIKeys(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var sawUsed, sawUnused, sawExpiry, sawNoExpiry bool

	for seed := int64(0); seed < 10; seed++ {
		g := New(
			WithRand(rand.New(rand.NewSource(seed))), //nolint:gosec // deterministic test data
			WithClock(func() time.Time { return now }),
		)

		keys := g.APIKeys()
		require.Len(t, keys, apiKeyCount)

		for i, k := range keys {
			assert.Equal(t, fmt.Sprintf("key-%d", i+1), k.ID)
			assert.True(t, strings.HasPrefix(k.Key, apiKeyPrefix))
			assert.Len(t, k.Key, len(apiKeyPrefix)+keyLength)
			assert.Equal(t, keyPermissions[:len(k.Permissions)], k.Permissions)
			assert.False(t, k.Created.After(now))

			if k.LastUsed != nil {
				sawUsed = true
				assert.False(t, k.LastUsed.After(now))
				assert.False(t, k.LastUsed.Before(now.Add(-day)))
			} else {
				sawUnused = true
			}

			if k.ExpiresAt != nil {
				sawExpiry = true
				assert.False(t, k.ExpiresAt.Before(now))
			} else {
				sawNoExpiry = true
			}
		}
	}

	assert.True(t, sawUsed && sawUnused, "lastUsed should be optional")
	assert.True(t, sawExpiry && sawNoExpiry, "expiresAt should be optional")
}

func TestSeededGeneratorsAgree(t *testing.T) {
	now := time.Now()

	assert.Equal(t, newTestGenerator(now).ClusterNodes(), newTestGenerator(now).ClusterNodes())
}
