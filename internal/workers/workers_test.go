// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// orderWorker appends "start:<id>" and "stop:<id>" to a shared log.
type orderWorker struct {
	id  string
	log *[]string
}

func (o *orderWorker) Start() { *o.log = append(*o.log, "start:"+o.id) }
func (o *orderWorker) Stop()  { *o.log = append(*o.log, "stop:"+o.id) }

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []string
	ws := New(&orderWorker{id: "a", log: &log}, &orderWorker{id: "b", log: &log})

	ws.Start()
	ws.Stop()

	assert.Equal(t, []string{"start:a", "start:b", "stop:b", "stop:a"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	assert.NotPanics(t, func() {
		ws := New()
		ws.Start()
		ws.Stop()
	})
}

func TestWorkers_WrapsBackupPruner(t *testing.T) {
	var _ Worker = (*BackupPruner)(nil)
	var _ Worker = (*Workers)(nil)
}
