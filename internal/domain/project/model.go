package project

import (
	"strings"
	"time"
)

// Category classifies the kind of work a project covers.
type Category string

const (
	CategoryMaintenance Category = "maintenance"
	CategoryDevelopment Category = "development"
	CategorySocial      Category = "social"
	CategoryPerformance Category = "performance"
)

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{CategoryMaintenance, CategoryDevelopment, CategorySocial, CategoryPerformance}
}

// ParseCategory resolves raw text to a category. Matching is
// case-insensitive and ignores spaces, underscores, and hyphens.
func ParseCategory(raw string) (Category, bool) {
	switch normalizeEnum(raw) {
	case "maintenance":
		return CategoryMaintenance, true
	case "development":
		return CategoryDevelopment, true
	case "social":
		return CategorySocial, true
	case "performance":
		return CategoryPerformance, true
	}
	return "", false
}

// Label returns the display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryMaintenance:
		return "Maintenance"
	case CategoryDevelopment:
		return "Development"
	case CategorySocial:
		return "Social"
	case CategoryPerformance:
		return "Performance"
	}
	return string(c)
}

// Status represents the billing workflow state of a project.
type Status string

const (
	StatusInProgress      Status = "inprogress"
	StatusBilled          Status = "billed"
	StatusAwaitingPO      Status = "awaitingpo"
	StatusAwaitingPayment Status = "awaitingpayment"
	StatusOverdue         Status = "overdue"
)

// Statuses lists every valid status in declaration order.
func Statuses() []Status {
	return []Status{StatusInProgress, StatusBilled, StatusAwaitingPO, StatusAwaitingPayment, StatusOverdue}
}

// ParseStatus resolves raw text to a status. Matching is
// case-insensitive and ignores spaces, underscores, and hyphens.
func ParseStatus(raw string) (Status, bool) {
	switch normalizeEnum(raw) {
	case "inprogress":
		return StatusInProgress, true
	case "billed":
		return StatusBilled, true
	case "awaitingpo":
		return StatusAwaitingPO, true
	case "awaitingpayment":
		return StatusAwaitingPayment, true
	case "overdue":
		return StatusOverdue, true
	}
	return "", false
}

// Label returns the display name for the status.
func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusBilled:
		return "Billed"
	case StatusAwaitingPO:
		return "Awaiting PO"
	case StatusAwaitingPayment:
		return "Awaiting Payment"
	case StatusOverdue:
		return "Overdue"
	}
	return string(s)
}

// BillingType describes how a project is billed.
type BillingType string

const (
	BillingRetainer BillingType = "retainer"
	BillingFixed    BillingType = "fixed"
)

// BillingTypes lists every valid billing type in declaration order.
func BillingTypes() []BillingType {
	return []BillingType{BillingRetainer, BillingFixed}
}

// ParseBillingType resolves raw text to a billing type. Matching is
// case-insensitive and ignores spaces, underscores, and hyphens.
func ParseBillingType(raw string) (BillingType, bool) {
	switch normalizeEnum(raw) {
	case "retainer":
		return BillingRetainer, true
	case "fixed":
		return BillingFixed, true
	}
	return "", false
}

// Label returns the display name for the billing type.
func (b BillingType) Label() string {
	switch b {
	case BillingRetainer:
		return "Retainer"
	case BillingFixed:
		return "Fixed"
	}
	return string(b)
}

func normalizeEnum(raw string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Draft carries the validated fields of a project before an identifier
// is assigned. Only the validator produces drafts.
type Draft struct {
	Name        string      `json:"name" yaml:"name"`
	Client      string      `json:"client" yaml:"client"`
	Category    Category    `json:"category" yaml:"category"`
	Status      Status      `json:"status" yaml:"status"`
	BillingType BillingType `json:"billing_type" yaml:"billing_type"`
	Value       float64     `json:"value" yaml:"value"`
	StartDate   time.Time   `json:"start_date" yaml:"start_date"`
	EndDate     *time.Time  `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Team        []string    `json:"team" yaml:"team"`
}

// Project is a catalog entry. The ID is immutable and unique for the
// lifetime of the catalog.
type Project struct {
	ID string `json:"id" yaml:"id"`
	Draft
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// CatalogSummary aggregates catalog-wide stats.
type CatalogSummary struct {
	Total      int            `json:"total"`
	ByStatus   map[Status]int `json:"by_status"`
	TotalValue float64        `json:"total_value"`
}
