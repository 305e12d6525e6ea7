// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Activity is one entry of the activities list.
type Activity struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Date            time.Time `json:"date" yaml:"date"`
	Description     string    `json:"description,omitempty" yaml:"description,omitempty"`
	Category        string    `json:"category,omitempty" yaml:"category,omitempty"`
	City            string    `json:"city,omitempty" yaml:"city,omitempty"`
	Venue           string    `json:"venue,omitempty" yaml:"venue,omitempty"`
	IsCancelled     bool      `json:"isCancelled,omitempty" yaml:"isCancelled,omitempty"`
	HostDisplayName string    `json:"hostDisplayName,omitempty" yaml:"hostDisplayName,omitempty"`
}

// ListActivities calls GET /activities. Both a bare array and a paged
// {"items": [...]} body are accepted.
func (h *HTTP) ListActivities(ctx context.Context) ([]Activity, error) {
	r, err := h.call(ctx, "activities", http.MethodGet, h.endpoints.Activities, nil, nil)
	if err != nil {
		return nil, err
	}
	body := strings.TrimSpace(string(r.body))
	if body == "" {
		return []Activity{}, nil
	}
	if strings.HasPrefix(body, "{") {
		var page struct {
			Items []Activity `json:"items"`
		}
		if err := decode(r, &page); err != nil {
			return nil, err
		}
		if page.Items == nil {
			page.Items = []Activity{}
		}
		return page.Items, nil
	}
	var list []Activity
	if err := decode(r, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []Activity{}
	}
	return list, nil
}

