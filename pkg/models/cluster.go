package models

import "time"

// NodeStatus is the health of a cluster node.
type NodeStatus string

const (
	NodeHealthy  NodeStatus = "healthy"
	NodeWarning  NodeStatus = "warning"
	NodeCritical NodeStatus = "critical"
)

// ClusterNode is a broker node snapshot.
type ClusterNode struct {
	ID       string     `json:"id"`
	Hostname string     `json:"hostname"`
	Status   NodeStatus `json:"status"`
	CPU      float64    `json:"cpu"`
	Memory   float64    `json:"memory"`
	Disk     float64    `json:"disk"`
	Network  float64    `json:"network"`
	IsLeader bool       `json:"is_leader"`
	LastSeen time.Time  `json:"last_seen"`
	Region   string     `json:"region"`
	Zone     string     `json:"zone"`
	// Uptime in milliseconds.
	Uptime  float64 `json:"uptime"`
	Version string  `json:"version"`
}

// ConsumerGroupStatus is the membership state of a consumer group.
type ConsumerGroupStatus string

const (
	GroupActive      ConsumerGroupStatus = "active"
	GroupInactive    ConsumerGroupStatus = "inactive"
	GroupRebalancing ConsumerGroupStatus = "rebalancing"
)

// ConsumerGroup is a consumer group attached to a topic.
type ConsumerGroup struct {
	ID          string              `json:"id"`
	Members     int                 `json:"members"`
	Lag         float64             `json:"lag"`
	Status      ConsumerGroupStatus `json:"status"`
	Coordinator string              `json:"coordinator"`
}

// Topic is a topic snapshot including its consumer groups.
type Topic struct {
	Name              string          `json:"name"`
	Partitions        int             `json:"partitions"`
	ReplicationFactor int             `json:"replication_factor"`
	MessageRate       float64         `json:"message_rate"`
	BytesPerSec       float64         `json:"bytes_per_sec"`
	ConsumerGroups    []ConsumerGroup `json:"consumer_groups"`
	RetentionMs       float64         `json:"retention_ms"`
	Size              string          `json:"size"`
	CompactionEnabled bool            `json:"compaction_enabled"`
	Created           time.Time       `json:"created"`
	LastModified      time.Time       `json:"last_modified"`
}

// Clone returns a copy of the topic with its own consumer group slice.
func (t Topic) Clone() Topic {
	out := t
	out.ConsumerGroups = append([]ConsumerGroup(nil), t.ConsumerGroups...)

	return out
}

// AlertSeverity ranks an alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityError    AlertSeverity = "error"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a dashboard alert.
type Alert struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Message      string        `json:"message"`
	Severity     AlertSeverity `json:"severity"`
	Timestamp    time.Time     `json:"timestamp"`
	Acknowledged bool          `json:"acknowledged"`
	Source       string        `json:"source"`
}

// SecurityEventType categorizes a security event.
type SecurityEventType string

const (
	EventAuthentication SecurityEventType = "authentication"
	EventAuthorization  SecurityEventType = "authorization"
	EventConfiguration  SecurityEventType = "configuration"
	EventAccess         SecurityEventType = "access"
)

// EventSeverity ranks a security event.
type EventSeverity string

const (
	EventLow      EventSeverity = "low"
	EventMedium   EventSeverity = "medium"
	EventHigh     EventSeverity = "high"
	EventCritical EventSeverity = "critical"
)

// SecurityEvent is an audit log entry shown on the security page.
type SecurityEvent struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Type      SecurityEventType `json:"type"`
	Severity  EventSeverity     `json:"severity"`
	User      string            `json:"user"`
	Action    string            `json:"action"`
	Resource  string            `json:"resource"`
	IP        string            `json:"ip"`
	Success   bool              `json:"success"`
}

// UserRole is the access level of a dashboard user.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
	RoleViewer   UserRole = "viewer"
)

// User is an account listed on the security page.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        UserRole  `json:"role"`
	LastLogin   time.Time `json:"lastLogin"`
	Active      bool      `json:"active"`
	Permissions []string  `json:"permissions"`
}

// APIKey is an issued client credential. LastUsed and ExpiresAt are nil when
// the key was never used or does not expire.
type APIKey struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Key         string     `json:"key"`
	Permissions []string   `json:"permissions"`
	Created     time.Time  `json:"created"`
	LastUsed    *time.Time `json:"lastUsed,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}
