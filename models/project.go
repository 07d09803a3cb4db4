// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Supported front-end framework tags for a project.
const (
	FrameworkReact  = "react"
	FrameworkVue    = "vue"
	FrameworkSvelte = "svelte"
	FrameworkHTML   = "html"
)

// Project pairs user-authored metadata with AI-generated source text.
// A project is owned exclusively by its user; all store operations are
// keyed by (UserID, ID) so that foreign projects are indistinguishable
// from absent ones.
type Project struct {
	// ID is the server-assigned project identifier (UUID).
	ID string `json:"id"`

	// UserID is the identifier of the owning user.
	UserID string `json:"user_id"`

	// Name is the user-visible project title.
	Name string `json:"name"`

	// Description is an optional free-form summary.
	Description string `json:"description"`

	// Framework is the target front-end framework tag ("react" by default).
	Framework string `json:"framework"`

	// Template is an optional starter template identifier.
	Template string `json:"template,omitempty"`

	// Code holds the generated source text of the project.
	Code string `json:"code"`

	// Published marks the project as publicly visible.
	Published bool `json:"published"`

	// CreatedAt is the timestamp when the project was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every mutation; list ordering is by this
	// field, newest first.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// ProjectUpdate describes a partial project mutation. Nil fields are left
// untouched by the update query.
type ProjectUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Code        *string `json:"code,omitempty"`
	Published   *bool   `json:"published,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProjectUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Code == nil && u.Published == nil
}
