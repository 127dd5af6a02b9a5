/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package mockdata synthesizes the cluster, topic, alert and metrics data the
// dashboard displays. Every factory is side-effect free apart from drawing
// from the generator's random source.
package mockdata

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/mfreeman451/streamdash/pkg/models"
)

const (
	nodeCount        = 15
	alertCount       = 50
	securityCount    = 100
	apiKeyCount      = 8
	apiKeyPrefix     = "nk_"
	keyAlphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
	keyLength        = 26
	brokerVersion    = "2.8.1"
	baseMessageRate  = 5000.0
	rateAmplitude    = 2000.0
	noiseSpread      = 1000.0
	bytesPerMessage  = 256
	maxErrorRate     = 0.01
	minLatencyMs     = 10.0
	latencySpreadMs  = 100.0
	partitionLagSpan = 100.0
	day              = 24 * time.Hour
)

var (
	regions = []string{"us-east-1", "us-west-2", "eu-west-1", "ap-southeast-1"}
	zones   = []string{"a", "b", "c"}

	topicNames = []string{
		"user-events", "payment-transactions", "order-updates", "inventory-changes",
		"user-sessions", "email-notifications", "audit-logs", "metrics-data",
		"search-queries", "cart-events", "recommendation-events", "fraud-detection",
		"customer-support", "delivery-tracking", "product-reviews", "analytics-events",
		"marketing-campaigns", "system-health", "security-events", "billing-events",
	}

	alertTemplates = []struct {
		title    string
		message  string
		severity models.AlertSeverity
	}{
		{"High Consumer Lag", "Consumer group lag exceeds threshold", models.SeverityWarning},
		{"Node Offline", "Cluster node became unresponsive", models.SeverityCritical},
		{"Disk Space Low", "Disk usage above 85%", models.SeverityWarning},
		{"Replication Failed", "Topic replication factor violated", models.SeverityError},
		{"Authentication Failed", "Multiple failed login attempts detected", models.SeverityWarning},
		{"Performance Degraded", "Message processing latency increased", models.SeverityInfo},
	}

	securityActions = []string{"login", "logout", "topic-create", "topic-delete", "config-change", "key-generate"}
	securityUsers   = []string{"admin@nexus.io", "operator@nexus.io", "viewer@nexus.io", "external-api"}

	userNames       = []string{"Alice Johnson", "Bob Smith", "Carol Davis", "David Wilson", "Eve Brown"}
	userRoles       = []models.UserRole{models.RoleAdmin, models.RoleOperator, models.RoleViewer}
	userPermissions = []string{"read", "write", "admin"}
	keyPermissions  = []string{"read", "write"}
)

// Generator produces synthetic dashboard data.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source, for reproducible output.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) {
		g.rnd = rnd
	}
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator seeded from the current time unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // synthetic data
		now: time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// float draws from [0, 1). rand.Rand is not safe for concurrent use.
func (g *Generator) float() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rnd.Float64()
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rnd.Intn(n)
}

func (g *Generator) ago(max time.Duration) time.Time {
	return g.now().Add(-time.Duration(g.float() * float64(max)))
}

// ClusterNodes returns the broker fleet spread over four regions.
func (g *Generator) ClusterNodes() []models.ClusterNode {
	nodes := make([]models.ClusterNode, 0, nodeCount)

	for i := 0; i < nodeCount; i++ {
		region := regions[i%len(regions)]
		zone := zones[i%len(zones)]

		status := models.NodeHealthy
		if g.float() <= 0.15 {
			status = models.NodeCritical
			if g.float() > 0.3 {
				status = models.NodeWarning
			}
		}

		nodes = append(nodes, models.ClusterNode{
			ID:       fmt.Sprintf("node-%d", i+1),
			Hostname: fmt.Sprintf("nexus-%s-%s-%03d", region, zone, i+1),
			Status:   status,
			CPU:      g.float() * 100,
			Memory:   g.float() * 100,
			Disk:     g.float() * 100,
			Network:  g.float() * 100,
			IsLeader: i == 0,
			LastSeen: g.ago(time.Hour),
			Region:   region,
			Zone:     region + zone,
			Uptime:   g.float() * float64((365 * day).Milliseconds()),
			Version:  brokerVersion,
		})
	}

	return nodes
}

// Topics returns one snapshot per known topic name.
func (g *Generator) Topics() []models.Topic {
	topics := make([]models.Topic, 0, len(topicNames))

	for _, name := range topicNames {
		topics = append(topics, models.Topic{
			Name:              name,
			Partitions:        g.intn(32) + 1,
			ReplicationFactor: g.intn(3) + 1,
			MessageRate:       g.float() * 10000,
			BytesPerSec:       g.float() * 1024 * 1024,
			ConsumerGroups:    g.ConsumerGroups(g.intn(5) + 1),
			RetentionMs:       (g.float()*7 + 1) * float64(day.Milliseconds()),
			Size:              fmt.Sprintf("%.2f GB", g.float()*100),
			CompactionEnabled: g.float() > 0.5,
			Created:           g.ago(365 * day),
			LastModified:      g.ago(day),
		})
	}

	return topics
}

// ConsumerGroups returns count consumer groups coordinated by random nodes.
func (g *Generator) ConsumerGroups(count int) []models.ConsumerGroup {
	groups := make([]models.ConsumerGroup, 0, count)

	for i := 0; i < count; i++ {
		status := models.GroupInactive

		switch {
		case g.float() > 0.8:
			status = models.GroupRebalancing
		case g.float() > 0.1:
			status = models.GroupActive
		}

		groups = append(groups, models.ConsumerGroup{
			ID:          fmt.Sprintf("consumer-group-%d", i+1),
			Members:     g.intn(10) + 1,
			Lag:         g.float() * 1000,
			Status:      status,
			Coordinator: fmt.Sprintf("node-%d", g.intn(nodeCount)+1),
		})
	}

	return groups
}

// Alerts returns a day's worth of alerts drawn from the alert templates.
func (g *Generator) Alerts() []models.Alert {
	alerts := make([]models.Alert, 0, alertCount)

	for i := 0; i < alertCount; i++ {
		tmpl := alertTemplates[g.intn(len(alertTemplates))]

		alerts = append(alerts, models.Alert{
			ID:           fmt.Sprintf("alert-%d", i+1),
			Title:        tmpl.title,
			Message:      tmpl.message,
			Severity:     tmpl.severity,
			Timestamp:    g.ago(day),
			Acknowledged: g.float() > 0.7,
			Source:       fmt.Sprintf("node-%d", g.intn(nodeCount)+1),
		})
	}

	return alerts
}

// MetricsTimeSeries returns hours+1 hourly samples ending now, oldest first.
func (g *Generator) MetricsTimeSeries(hours int) []models.MetricsSample {
	if hours < 0 {
		hours = 0
	}

	now := g.now()
	samples := make([]models.MetricsSample, 0, hours+1)

	for i := hours; i >= 0; i-- {
		rate := math.Max(0, baseMessageRate+math.Sin(float64(i)/4)*rateAmplitude+g.noise())

		samples = append(samples, models.MetricsSample{
			Timestamp:         now.Add(-time.Duration(i) * time.Hour),
			MessagesPerSecond: rate,
			BytesPerSecond:    rate * bytesPerMessage,
			ErrorRate:         g.float() * maxErrorRate,
			Throughput:        rate,
			LatencyMs:         g.float()*latencySpreadMs + minLatencyMs,
			PartitionLag: map[string]float64{
				"partition-0": g.float() * partitionLagSpan,
				"partition-1": g.float() * partitionLagSpan,
				"partition-2": g.float() * partitionLagSpan,
			},
		})
	}

	return samples
}

// RealtimeMetrics returns a live reading. PartitionLag is left absent.
func (g *Generator) RealtimeMetrics() models.MetricsPatch {
	now := g.now()
	minutes := float64(now.UnixMilli()) / float64(time.Minute.Milliseconds())
	rate := math.Max(0, baseMessageRate+math.Sin(minutes)*rateAmplitude+g.noise())

	return models.MetricsPatch{
		Timestamp:         models.Time(now),
		MessagesPerSecond: models.Float(rate),
		BytesPerSecond:    models.Float(rate * bytesPerMessage),
		ErrorRate:         models.Float(g.float() * maxErrorRate),
		Throughput:        models.Float(rate),
		LatencyMs:         models.Float(g.float()*latencySpreadMs + minLatencyMs),
	}
}

// SecurityEvents returns a week of audit events.
func (g *Generator) SecurityEvents() []models.SecurityEvent {
	events := make([]models.SecurityEvent, 0, securityCount)

	for i := 0; i < securityCount; i++ {
		events = append(events, models.SecurityEvent{
			ID:        fmt.Sprintf("event-%d", i+1),
			Timestamp: g.ago(7 * day),
			Type:      g.eventType(),
			Severity:  g.eventSeverity(),
			User:      securityUsers[g.intn(len(securityUsers))],
			Action:    securityActions[g.intn(len(securityActions))],
			Resource:  fmt.Sprintf("topic-%d", g.intn(len(topicNames))+1),
			IP:        fmt.Sprintf("192.168.%d.%d", g.intn(255), g.intn(255)),
			Success:   g.float() > 0.1,
		})
	}

	return events
}

// Users returns the dashboard accounts with roles assigned round-robin.
func (g *Generator) Users() []models.User {
	users := make([]models.User, 0, len(userNames))

	for i, name := range userNames {
		users = append(users, models.User{
			ID:          fmt.Sprintf("user-%d", i+1),
			Email:       strings.ToLower(strings.Replace(name, " ", ".", 1)) + "@nexus.io",
			Name:        name,
			Role:        userRoles[i%len(userRoles)],
			LastLogin:   g.ago(7 * day),
			Active:      g.float() > 0.1,
			Permissions: append([]string(nil), userPermissions[:g.intn(len(userPermissions))+1]...),
		})
	}

	return users
}

// APIKeys returns issued keys. Roughly 70% have been used in the last day and
// half carry an expiry within the next year.
func (g *Generator) APIKeys() []models.APIKey {
	keys := make([]models.APIKey, 0, apiKeyCount)

	for i := 0; i < apiKeyCount; i++ {
		key := models.APIKey{
			ID:          fmt.Sprintf("key-%d", i+1),
			Name:        fmt.Sprintf("API Key %d", i+1),
			Key:         g.keyToken(),
			Permissions: append([]string(nil), keyPermissions[:g.intn(len(keyPermissions))+1]...),
			Created:     g.ago(90 * day),
		}

		if g.float() > 0.3 {
			used := g.ago(day)
			key.LastUsed = &used
		}

		if g.float() > 0.5 {
			expires := g.now().Add(time.Duration(g.float() * float64(365*day)))
			key.ExpiresAt = &expires
		}

		keys = append(keys, key)
	}

	return keys
}

func (g *Generator) keyToken() string {
	var b strings.Builder

	b.WriteString(apiKeyPrefix)

	for i := 0; i < keyLength; i++ {
		b.WriteByte(keyAlphabet[g.intn(len(keyAlphabet))])
	}

	return b.String()
}

func (g *Generator) noise() float64 {
	return (g.float() - 0.5) * noiseSpread
}

func (g *Generator) eventType() models.SecurityEventType {
	switch {
	case g.float() > 0.5:
		return models.EventAuthentication
	case g.float() > 0.5:
		return models.EventAuthorization
	default:
		return models.EventConfiguration
	}
}

func (g *Generator) eventSeverity() models.EventSeverity {
	switch {
	case g.float() > 0.9:
		return models.EventCritical
	case g.float() > 0.7:
		return models.EventHigh
	case g.float() > 0.5:
		return models.EventMedium
	default:
		return models.EventLow
	}
}
