// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm hosts the settlement engine behind a JSON-RPC interface.
package vm

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/database/versiondb"
	avajson "github.com/ava-labs/avalanchego/utils/json"
	"github.com/ava-labs/avalanchego/vms/components/avax"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"

	"github.com/optionvm/optionvm/chain"
	"github.com/optionvm/optionvm/version"
)

const (
	Name           = "optionvm"
	PublicEndpoint = "/public"
)

var singletonStatePrefix = []byte("singleton")

type VM struct {
	config  Config
	genesis *chain.Genesis

	db        *versiondb.Database
	singleton avax.SingletonState

	// mu serializes transaction acceptance so each accepted transaction
	// observes the height set by the previous one.
	mu sync.Mutex

	activity       []*chain.Activity
	activityCursor uint64
}

func New(config Config) *VM {
	return &VM{config: config}
}

// Initialize loads the settlement state in [db], creating it from
// [genesisBytes] the first time the database is seen.
func (vm *VM) Initialize(db database.Database, genesisBytes []byte) error {
	log.Info("initializing vm", "version", version.Version)

	genesis := new(chain.Genesis)
	if err := json.Unmarshal(genesisBytes, genesis); err != nil {
		return err
	}
	if err := genesis.Verify(); err != nil {
		return err
	}
	vm.genesis = genesis

	vm.db = versiondb.New(db)
	vm.singleton = avax.NewSingletonState(prefixdb.New(singletonStatePrefix, vm.db))
	vm.activity = make([]*chain.Activity, vm.config.ActivityCacheSize)

	initialized, err := vm.singleton.IsInitialized()
	if err != nil {
		return err
	}
	if initialized {
		height, err := chain.GetHeight(vm.db)
		if err != nil {
			return err
		}
		log.Info("state already initialized", "height", height)
		return nil
	}

	if err := vm.genesis.Load(vm.db); err != nil {
		return err
	}
	if err := vm.singleton.SetInitialized(); err != nil {
		return err
	}
	return vm.db.Commit()
}

func (vm *VM) Shutdown() error {
	if vm.db == nil {
		return nil
	}
	if err := vm.db.Commit(); err != nil {
		return err
	}
	return vm.db.Close()
}

func (vm *VM) Version() (string, error) { return version.Version.String(), nil }

func (vm *VM) Genesis() *chain.Genesis {
	return vm.genesis
}

func (vm *VM) CreateHandlers() (map[string]http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(avajson.NewCodec(), "application/json")
	server.RegisterCodec(avajson.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{vm: vm}, Name); err != nil {
		return nil, err
	}
	return map[string]http.Handler{
		PublicEndpoint: server,
	}, nil
}

// Submit executes each transaction against the current state in order. A
// rejected transaction leaves no trace in the database.
func (vm *VM) Submit(txs ...*chain.Transaction) (results []*chain.TransactionResult, errs []error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	for _, tx := range txs {
		result, err := vm.submit(tx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, result)
	}
	return results, errs
}

func (vm *VM) submit(tx *chain.Transaction) (*chain.TransactionResult, error) {
	if vm.db == nil {
		return nil, ErrNotInitialized
	}

	// Stage all writes so a rejected transaction can be discarded whole.
	vdb := versiondb.New(vm.db)
	defer vdb.Abort()

	height, err := chain.GetHeight(vdb)
	if err != nil {
		return nil, err
	}
	height++

	result, err := tx.Execute(vm.genesis, vdb, height)
	if err != nil {
		log.Debug("rejected tx", "txId", tx.ID(), "err", err)
		return nil, err
	}
	if err := chain.SetHeight(vdb, height); err != nil {
		return nil, err
	}
	if err := vdb.Commit(); err != nil {
		return nil, err
	}
	if err := vm.db.Commit(); err != nil {
		return nil, err
	}

	activity := tx.Activity()
	activity.Height = height
	vm.addActivity(activity)

	log.Info("accepted tx", "txId", tx.ID(), "type", result.Typ, "height", height)
	return result, nil
}

func (vm *VM) addActivity(activity *chain.Activity) {
	cs := uint64(vm.config.ActivityCacheSize)
	if cs == 0 {
		return
	}
	vm.activity[vm.activityCursor%cs] = activity
	vm.activityCursor++
}

// RecentActivity returns the most recently accepted transactions, newest
// first.
func (vm *VM) RecentActivity() []*chain.Activity {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	cs := uint64(vm.config.ActivityCacheSize)
	if cs == 0 {
		return nil
	}
	start := uint64(0)
	if vm.activityCursor > cs {
		start = vm.activityCursor - cs
	}
	activity := make([]*chain.Activity, 0, vm.activityCursor-start)
	for i := vm.activityCursor; i > start; i-- {
		activity = append(activity, vm.activity[(i-1)%cs])
	}
	return activity
}
