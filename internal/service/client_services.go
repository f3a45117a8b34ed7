package service

import (
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
)

type ClientServices struct {
	AuthService   ClientAuthService
	RecordService ClientRecordService
	SyncService   ClientSyncService
	SyncJob       ClientSyncJob
}

// NewClientServices wires the client services over one local store. remote
// and tables are the cloud backend; a nil remote leaves the client offline.
func NewClientServices(localStore store.LocalStorage, remote gateway.Authenticator, tables gateway.Tables, notifier Notifier, logger *logger.Logger) *ClientServices {
	data := newLocalData(localStore)
	syncSvc := newClientSyncService(data, tables, notifier, logger)

	return &ClientServices{
		AuthService:   newClientAuthService(data, remote, time.Now, logger),
		RecordService: newClientRecordService(data, time.Now, logger),
		SyncService:   syncSvc,
		SyncJob:       NewClientSyncJob(syncSvc),
	}
}
