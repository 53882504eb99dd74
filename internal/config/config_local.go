//go:build !gcloud

package config

// Validate accepts an empty PRIMIND_TASKS_URL; dispatch is then disabled.
func (c *TaskQueueConfig) Validate() error {
	return nil
}
