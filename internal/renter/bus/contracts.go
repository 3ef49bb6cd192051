package bus

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/koustreak/SiaRi/internal/renter/types"
)

// ContractState is the lifecycle state of a file contract.
type ContractState string

const (
	ContractStateInvalid  ContractState = "invalid"
	ContractStateUnknown  ContractState = "unknown"
	ContractStatePending  ContractState = "pending"
	ContractStateActive   ContractState = "active"
	ContractStateComplete ContractState = "complete"
	ContractStateFailed   ContractState = "failed"
)

// Archival reasons the daemon records when contracts get archived.
const (
	ArchivalReasonHostPruned = "hostpruned"
	ArchivalReasonRemoved    = "removed"
	ArchivalReasonRenewed    = "renewed"
)

// ContractSpending itemizes what a contract's funds were spent on.
type ContractSpending struct {
	Uploads     types.Currency `json:"uploads"`
	Downloads   types.Currency `json:"downloads"`
	FundAccount types.Currency `json:"fundAccount"`
	Deletions   types.Currency `json:"deletions"`
	SectorRoots types.Currency `json:"sectorRoots"`
}

// Contract is an active file contract with a host. ContractSets is nil for
// contracts that belong to no set.
type Contract struct {
	ID             types.FileContractID `json:"id"`
	HostIP         string               `json:"hostIP"`
	HostKey        types.PublicKey      `json:"hostKey"`
	SiamuxAddr     string               `json:"siamuxAddr"`
	ProofHeight    uint64               `json:"proofHeight"`
	RevisionHeight uint64               `json:"revisionHeight"`
	RevisionNumber uint64               `json:"revisionNumber"`
	Size           uint64               `json:"size"`
	StartHeight    uint64               `json:"startHeight"`
	State          ContractState        `json:"state"`
	WindowStart    uint64               `json:"windowStart"`
	WindowEnd      uint64               `json:"windowEnd"`
	ContractPrice  types.Currency       `json:"contractPrice"`
	RenewedFrom    types.FileContractID `json:"renewedFrom"`
	Spending       ContractSpending     `json:"spending"`
	TotalCost      types.Currency       `json:"totalCost"`
	ContractSets   []string             `json:"contractSets"`
}

// ArchivedContract is a contract that already ran its course, kept around
// for its renewal chain.
type ArchivedContract struct {
	ID             types.FileContractID `json:"id"`
	HostKey        types.PublicKey      `json:"hostKey"`
	RenewedTo      types.FileContractID `json:"renewedTo"`
	Spending       ContractSpending     `json:"spending"`
	ProofHeight    uint64               `json:"proofHeight"`
	RevisionHeight uint64               `json:"revisionHeight"`
	RevisionNumber uint64               `json:"revisionNumber"`
	Size           uint64               `json:"size"`
	StartHeight    uint64               `json:"startHeight"`
	State          ContractState        `json:"state"`
	WindowStart    uint64               `json:"windowStart"`
	WindowEnd      uint64               `json:"windowEnd"`
}

// PrunableContract reports how much of one contract's data can be pruned.
type PrunableContract struct {
	ID       types.FileContractID `json:"id"`
	Prunable uint64               `json:"prunable"`
	Size     uint64               `json:"size"`
}

// PrunableData sums prunable data across all contracts.
type PrunableData struct {
	Contracts     []PrunableContract `json:"contracts"`
	TotalPrunable uint64             `json:"totalPrunable"`
	TotalSize     uint64             `json:"totalSize"`
}

// ContractSpendingRecord reports spending against one contract revision.
// The spending fields sit inline next to the contract id on the wire.
type ContractSpendingRecord struct {
	ContractID     types.FileContractID `json:"contractID"`
	RevisionNumber uint64               `json:"revisionNumber"`
	Size           uint64               `json:"size"`
	ContractSpending
}

// Contracts lists active contracts, all of them or just one set's.
func (c *Client) Contracts(ctx context.Context, contractSet string) ([]Contract, error) {
	query := url.Values{}
	if contractSet != "" {
		query.Set("contractset", contractSet)
	}
	var out []Contract
	if err := c.api.Get(ctx, "/bus/contracts", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Contract fetches a contract by id.
func (c *Client) Contract(ctx context.Context, id types.FileContractID) (*Contract, error) {
	var out Contract
	if err := c.api.Get(ctx, "/bus/contract/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContract removes the contract with the given id.
func (c *Client) DeleteContract(ctx context.Context, id types.FileContractID) error {
	return c.api.Delete(ctx, "/bus/contract/"+id.String(), nil)
}

// AcquireContract locks the contract for exclusive use for up to duration.
// Higher priorities win contention. The returned lock id feeds keepalive
// and release.
func (c *Client) AcquireContract(ctx context.Context, id types.FileContractID, duration time.Duration, priority int) (uint64, error) {
	body := struct {
		Duration types.DurationMS `json:"duration"`
		Priority int              `json:"priority"`
	}{Duration: types.DurationMS(duration), Priority: priority}

	var out struct {
		LockID uint64 `json:"lockID"`
	}
	if err := c.api.Post(ctx, "/bus/contract/"+id.String()+"/acquire", nil, &body, &out); err != nil {
		return 0, err
	}
	return out.LockID, nil
}

// KeepaliveContract extends an acquired contract lock by duration.
func (c *Client) KeepaliveContract(ctx context.Context, id types.FileContractID, duration time.Duration, lockID uint64) error {
	body := struct {
		Duration types.DurationMS `json:"duration"`
		LockID   uint64           `json:"lockID"`
	}{Duration: types.DurationMS(duration), LockID: lockID}
	return c.api.Post(ctx, "/bus/contract/"+id.String()+"/keepalive", nil, &body, nil)
}

// ReleaseContract gives up an acquired contract lock.
func (c *Client) ReleaseContract(ctx context.Context, id types.FileContractID, lockID uint64) error {
	body := struct {
		LockID uint64 `json:"lockID"`
	}{LockID: lockID}
	return c.api.Post(ctx, "/bus/contract/"+id.String()+"/release", nil, &body, nil)
}

// AncestorContracts walks the renewal chain of a contract backwards,
// optionally only down to contracts started at or above minStartHeight.
func (c *Client) AncestorContracts(ctx context.Context, id types.FileContractID, minStartHeight uint64) ([]ArchivedContract, error) {
	query := url.Values{}
	if minStartHeight > 0 {
		query.Set("minStartHeight", strconv.FormatUint(minStartHeight, 10))
	}
	var out []ArchivedContract
	if err := c.api.Get(ctx, "/bus/contract/"+id.String()+"/ancestors", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RenewedContract fetches the contract that renewed the given one.
func (c *Client) RenewedContract(ctx context.Context, renewedFrom types.FileContractID) (*Contract, error) {
	var out Contract
	if err := c.api.Get(ctx, "/bus/contracts/renewed/"+renewedFrom.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContractRoots returns the sector roots stored under a contract plus the
// roots of uploads still in flight. Either list may be nil.
func (c *Client) ContractRoots(ctx context.Context, id types.FileContractID) (roots, uploading []types.Hash256, err error) {
	var out struct {
		Roots     []types.Hash256 `json:"roots"`
		Uploading []types.Hash256 `json:"uploading"`
	}
	if err := c.api.Get(ctx, "/bus/contract/"+id.String()+"/roots", nil, &out); err != nil {
		return nil, nil, err
	}
	return out.Roots, out.Uploading, nil
}

// ContractSize reports a contract's current size and how much of it could
// be pruned.
func (c *Client) ContractSize(ctx context.Context, id types.FileContractID) (prunable, size uint64, err error) {
	var out struct {
		Prunable uint64 `json:"prunable"`
		Size     uint64 `json:"size"`
	}
	if err := c.api.Get(ctx, "/bus/contract/"+id.String()+"/size", nil, &out); err != nil {
		return 0, 0, err
	}
	return out.Prunable, out.Size, nil
}

// PrunableData sums prunable data across all contracts.
func (c *Client) PrunableData(ctx context.Context) (*PrunableData, error) {
	var out PrunableData
	if err := c.api.Get(ctx, "/bus/contracts/prunable", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContractSets lists the names of all contract sets.
func (c *Client) ContractSets(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.api.Get(ctx, "/bus/contracts/sets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateContractSet makes the named set contain exactly the given contracts.
func (c *Client) UpdateContractSet(ctx context.Context, name string, contractIDs []types.FileContractID) error {
	return c.api.Put(ctx, "/bus/contracts/set/"+name, nil, contractIDs)
}

// DeleteContractSet removes the named contract set, not its contracts.
func (c *Client) DeleteContractSet(ctx context.Context, name string) error {
	return c.api.Delete(ctx, "/bus/contracts/set/"+name, nil)
}

// DeleteAllContracts removes every contract from the bus.
func (c *Client) DeleteAllContracts(ctx context.Context) error {
	return c.api.Delete(ctx, "/bus/contracts/all", nil)
}

// ArchiveContracts archives the given contracts, keyed by id with a
// free-form reason each.
func (c *Client) ArchiveContracts(ctx context.Context, reasons map[types.FileContractID]string) error {
	return c.api.Post(ctx, "/bus/contracts/archive", nil, reasons, nil)
}

// RecordContractSpending reports spending updates for a batch of contracts.
func (c *Client) RecordContractSpending(ctx context.Context, records []ContractSpendingRecord) error {
	return c.api.Post(ctx, "/bus/contracts/spending", nil, records, nil)
}
