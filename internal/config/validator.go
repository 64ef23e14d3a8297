package config

import "strings"

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if !c.LeaderboardPersistent() {
		warnings = append(warnings, WarnMsgLeaderboardInMemory)
	}

	if c.Environment == EnvironmentProduction {
		if c.LogFormat == "text" {
			warnings = append(warnings, WarnMsgTextLogsInProd)
		}
		if strings.EqualFold(c.LogLevel, "debug") {
			warnings = append(warnings, WarnMsgDebugLogsInProd)
		}
		if c.APIKey == "" {
			warnings = append(warnings, WarnMsgOpenAPIInProd)
		}
	}

	return warnings
}
