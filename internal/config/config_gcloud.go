//go:build gcloud

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate requires a complete Cloud Tasks target; alarms cannot be dispatched without one.
func (c *TaskQueueConfig) Validate() error {
	var errs []error

	if c.GCloudProjectID == "" {
		errs = append(errs, errors.New("GCLOUD_PROJECT_ID is required"))
	}
	if c.GCloudLocationID == "" {
		errs = append(errs, errors.New("GCLOUD_LOCATION_ID is required"))
	}
	if c.GCloudQueueID == "" {
		errs = append(errs, errors.New("GCLOUD_QUEUE_ID is required"))
	}
	if c.GCloudTargetURL == "" {
		errs = append(errs, errors.New("GCLOUD_TARGET_URL is required"))
	} else if u, err := url.Parse(c.GCloudTargetURL); err != nil || u.Scheme != "https" {
		errs = append(errs, fmt.Errorf("GCLOUD_TARGET_URL must be an https URL: %q", c.GCloudTargetURL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("task queue configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
