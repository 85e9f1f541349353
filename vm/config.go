// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

type Config struct {
	// ActivityCacheSize is the number of recently accepted transactions
	// served by the activity feed.
	ActivityCacheSize int `serialize:"true" json:"activityCacheSize"`
}

func (c *Config) SetDefaults() {
	c.ActivityCacheSize = 128
}
