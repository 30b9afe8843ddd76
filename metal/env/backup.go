package env

type BackupEnvironment struct {
	Enabled   bool
	Cron      string `validate:"required_if=Enabled true,omitempty,cron"`
	Dir       string `validate:"required_if=Enabled true"`
	Retention int    `validate:"gte=0,lte=365"`
}
