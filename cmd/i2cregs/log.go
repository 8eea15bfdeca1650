// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"
)

// getLogger returns a logger for the named level, as accepted by
// logrus.ParseLevel.
func getLogger(name string) (*logrus.Entry, error) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetLevel(level)
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	customFormatter.PrefixPadding = 10
	customFormatter.SpacePadding = 40
	logger.SetFormatter(customFormatter)
	return logrus.NewEntry(logger), nil
}
