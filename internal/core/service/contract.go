// Package service implements the CW20 ledger operations.
package service

import (
	"context"
	"log/slog"

	"github.com/rupam-04/cw20/internal/core/domain"
)

// SupplyRecorder receives total-supply updates after supply-changing
// operations commit. Used to keep the metrics gauge current.
type SupplyRecorder interface {
	SetTotalSupply(supply domain.Amount)
}

// ContractService is the operation layer of the ledger.
//
// The host serializes calls: one operation runs at a time per contract
// instance, and the enclosing storage transaction commits its writes
// atomically or discards them on any error.
type ContractService struct {
	store    ContractStore
	logger   *slog.Logger
	recorder SupplyRecorder
}

// Option configures a ContractService.
type Option func(*ContractService)

// WithSupplyRecorder wires a recorder for total-supply observability.
func WithSupplyRecorder(r SupplyRecorder) Option {
	return func(s *ContractService) {
		s.recorder = r
	}
}

// NewContractService creates a ContractService over the given store.
func NewContractService(store ContractStore, logger *slog.Logger, opts ...Option) *ContractService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ContractService{
		store:  store,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// Requests
// ============================================================================

// InstantiateRequest creates the contract instance. The caller becomes
// the immutable owner.
type InstantiateRequest struct {
	Caller          string
	Name            string
	Symbol          string
	Decimals        *uint8 // nil means DefaultDecimals
	InitialBalances []InitialBalanceRequest
}

// InitialBalanceRequest is one (address, amount) pair to credit at
// instantiation.
type InitialBalanceRequest struct {
	Address string
	Amount  domain.Amount
}

// TransferRequest moves funds from the caller to the recipient.
type TransferRequest struct {
	Caller    string
	Recipient string
	Amount    domain.Amount
}

// ApproveRequest grants the spender an additional allowance from the caller.
type ApproveRequest struct {
	Caller  string
	Spender string
	Amount  domain.Amount
}

// TransferFromRequest spends the caller's allowance to move the owner's
// funds to the recipient.
type TransferFromRequest struct {
	Caller    string
	Owner     string
	Recipient string
	Amount    domain.Amount
}

// DecreaseAllowanceRequest reduces the allowance the caller granted to
// the spender.
type DecreaseAllowanceRequest struct {
	Caller  string
	Spender string
	Amount  domain.Amount
}

// MintRequest creates new tokens for the recipient. Owner only.
type MintRequest struct {
	Caller    string
	Recipient string
	Amount    domain.Amount
}

// BurnRequest destroys tokens from the caller's own balance.
type BurnRequest struct {
	Caller string
	Amount domain.Amount
}

// PauseRequest toggles the pause flag. Owner only.
type PauseRequest struct {
	Caller string
}

// ============================================================================
// Instantiate
// ============================================================================

// Instantiate creates the contract state, records the caller as owner,
// and credits the initial balances. Each credit is paired with a supply
// mint so total_supply equals the credited sum.
func (s *ContractService) Instantiate(ctx context.Context, req *InstantiateRequest) (*domain.Outcome, error) {
	caller, err := domain.ParseAddress(req.Caller)
	if err != nil {
		return nil, err
	}

	decimals := uint8(domain.DefaultDecimals)
	if req.Decimals != nil {
		decimals = *req.Decimals
	}
	info := domain.NewTokenInfo(req.Name, req.Symbol, decimals)
	if err := info.Validate(); err != nil {
		return nil, err
	}

	initial := make([]domain.InitialBalance, 0, len(req.InitialBalances))
	for _, ib := range req.InitialBalances {
		addr, err := domain.ParseAddress(ib.Address)
		if err != nil {
			return nil, err
		}
		initial = append(initial, domain.InitialBalance{Address: addr, Amount: ib.Amount})
	}

	var supply domain.Amount
	err = s.store.Update(ctx, func(tx StateTx) error {
		if _, ok, err := tx.ContractState(); err != nil {
			return err
		} else if ok {
			return domain.ErrAlreadyInstantiated
		}

		if err := tx.SetContractState(domain.NewContractState(caller)); err != nil {
			return err
		}
		if err := tx.SetTokenInfo(info); err != nil {
			return err
		}

		ledger := NewTokenLedger(tx)
		for _, ib := range initial {
			if err := ledger.Credit(ib.Address, ib.Amount); err != nil {
				return err
			}
			if err := ledger.MintSupply(ib.Amount); err != nil {
				return err
			}
		}

		minted, _, err := tx.TokenInfo()
		if err != nil {
			return err
		}
		supply = minted.TotalSupply
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordSupply(supply)
	s.logger.InfoContext(ctx, "contract instantiated",
		"owner", caller.String(),
		"symbol", info.Symbol,
		"total_supply", supply.String())

	return domain.NewOutcome(domain.ActionInstantiate).
		Add("owner", caller.String()).
		Add("total_supply", supply.String()), nil
}

// ============================================================================
// Queries
// ============================================================================

// QueryBalance returns the balance for an address, zero for unseen ones.
// This is the sole operation with no ledger error path.
func (s *ContractService) QueryBalance(ctx context.Context, address string) (domain.Amount, error) {
	addr, err := domain.ParseAddress(address)
	if err != nil {
		return domain.Amount{}, err
	}
	var amount domain.Amount
	err = s.store.View(ctx, func(view StateView) error {
		amount, err = view.Balance(addr)
		return err
	})
	return amount, err
}

// QueryAllowance returns the remaining allowance for (owner, spender).
func (s *ContractService) QueryAllowance(ctx context.Context, owner, spender string) (domain.Amount, error) {
	ownerAddr, err := domain.ParseAddress(owner)
	if err != nil {
		return domain.Amount{}, err
	}
	spenderAddr, err := domain.ParseAddress(spender)
	if err != nil {
		return domain.Amount{}, err
	}
	var amount domain.Amount
	err = s.store.View(ctx, func(view StateView) error {
		amount, err = view.Allowance(ownerAddr, spenderAddr)
		return err
	})
	return amount, err
}

// QueryTokenInfo returns the token metadata and current total supply.
func (s *ContractService) QueryTokenInfo(ctx context.Context) (*domain.TokenInfo, error) {
	var info *domain.TokenInfo
	err := s.store.View(ctx, func(view StateView) error {
		loaded, ok, err := view.TokenInfo()
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotInstantiated
		}
		info = loaded
		return nil
	})
	return info, err
}

// ============================================================================
// Mutating operations
// ============================================================================

// Transfer moves amount from the caller to the recipient as one atomic
// state transition. No authorization beyond holding the funds.
func (s *ContractService) Transfer(ctx context.Context, req *TransferRequest) (*domain.Outcome, error) {
	caller, err := domain.ParseAddress(req.Caller)
	if err != nil {
		return nil, err
	}
	recipient, err := domain.ParseAddress(req.Recipient)
	if err != nil {
		return nil, err
	}

	return s.execute(ctx, func(tx StateTx, _ *domain.ContractState) (*domain.Outcome, error) {
		ledger := NewTokenLedger(tx)
		if err := ledger.Debit(caller, req.Amount); err != nil {
			return nil, err
		}
		if err := ledger.Credit(recipient, req.Amount); err != nil {
			return nil, err
		}
		return domain.NewOutcome(domain.ActionTransfer).
			Add("from", caller.String()).
			Add("to", recipient.String()).
			Add("amount", req.Amount.String()), nil
	})
}

// Approve grants the spender an additional allowance from the caller.
func (s *ContractService) Approve(ctx context.Context, req *ApproveRequest) (*domain.Outcome, error) {
	caller, err := domain.ParseAddress(req.Caller)
	if err != nil {
		return nil, err
	}
	spender, err := domain.ParseAddress(req.Spender)
	if err != nil {
		return nil, err
	}

	return s.execute(ctx, func(tx StateTx, _ *domain.ContractState) (*domain.Outcome, error) {
		if err := NewAllowanceRegistry(tx).Increase(caller, spender, req.Amount); err != nil {
			return nil, err
		}
		return domain.NewOutcome(domain.ActionApprove).
			Add("owner", caller.String()).
			Add("spender", spender.String()).
			Add("amount", req.Amount.String()), nil
	})
}

// TransferFrom spends the caller's allowance from the owner, then moves
// the owner's funds to the recipient. The allowance is consumed before
// the balance is checked or moved; a failure at any step discards the
// whole sequence.
func (s *ContractService) TransferFrom(ctx context.Context, req *TransferFromRequest) (*domain.Outcome, error) {
	caller, err := domain.ParseAddress(req.Caller)
	if err != nil {
		return nil, err
	}
	owner, err := domain.ParseAddress(req.Owner)
	if err != nil {
		return nil, err
	}
	recipient, err := domain.ParseAddress(req.Recipient)
	if err != nil {
		return nil, err
	}

	return s.execute(ctx, func(tx StateTx, _ *domain.ContractState) (*domain.Outcome, error) {
		if err := NewAllowanceRegistry(tx).Decrease(owner, caller, req.Amount); err != nil {
			return nil, err
		}
		ledger := NewTokenLedger(tx)
		if err := ledger.Debit(owner, req.Amount); err != nil {
			return nil, err
		}
		if err := ledger.Credit(recipient, req.Amount); err != nil {
			return nil, err
		}
		return domain.NewOutcome(domain.ActionTransferFrom).
			Add("from", owner.String()).
			Add("to", recipient.String()).
			Add("by", caller.String()).
			Add("amount", req.Amount.String()), nil
	})
}

// DecreaseAllowance reduces the allowance the caller granted to the spender.
func (s *ContractService) DecreaseAllowance(ctx context.Context, req *DecreaseAllowanceRequest) (*domain.Outcome, error) {
	caller, err := domain.ParseAddress(req.Caller)
	if err != nil {
		return nil, err
	}
	spender, err := domain.ParseAddress(req.Spender)
	if err != nil {
		return nil, err
	}

	return s.execute(ctx, func(tx StateTx, _ *domain.ContractState) (*domain.Outcome, error) {
		if err := NewAllowanceRegistry(tx).Decrease(caller, spender, req.Amount); err != nil {
			return nil, err
		}
		return domain.NewOutcome(domain.ActionDecreaseAllowance).
			Add("owner", caller.String()).
			Add("spender", spender.String()).
			Add("amount", req.Amount.String()), nil
	})
}

// Mint creates new tokens for the recipient. Owner only, rejected while
// paused, and guarded against reentrancy. The guard wraps only the
// mutation and is released on every exit path, so a failed authorization
// can never lock future mints out.
func (s *ContractService) Mint(ctx context.Context, req *MintRequest) (*domain.Outcome, error) {
	caller, err := domain.ParseAddress(req.Caller)
	if err != nil {
		return nil, err
	}
	recipient, err := domain.ParseAddress(req.Recipient)
	if err != nil {
		return nil, err
	}

	var supply domain.Amount
	out, err := s.execute(ctx, func(tx StateTx, state *domain.ContractState) (*domain.Outcome, error) {
		release, err := state.EnterGuard()
		if err != nil {
			return nil, err
		}
		defer release()

		if err := state.RequireOwner(caller); err != nil {
			return nil, err
		}
		if err := state.RequireNotPaused(); err != nil {
			return nil, err
		}

		ledger := NewTokenLedger(tx)
		if err := ledger.Credit(recipient, req.Amount); err != nil {
			return nil, err
		}
		if err := ledger.MintSupply(req.Amount); err != nil {
			return nil, err
		}

		info, _, err := tx.TokenInfo()
		if err != nil {
			return nil, err
		}
		supply = info.TotalSupply

		return domain.NewOutcome(domain.ActionMint).
			Add("to", recipient.String()).
			Add("amount", req.Amount.String()), nil
	})
	if err != nil {
		return nil, err
	}

	s.recordSupply(supply)
	s.logger.InfoContext(ctx, "tokens minted",
		"to", recipient.String(),
		"amount", req.Amount.String())
	return out, nil
}

// Burn destroys tokens from the caller's own balance and decreases the
// total supply by the same amount.
func (s *ContractService) Burn(ctx context.Context, req *BurnRequest) (*domain.Outcome, error) {
	caller, err := domain.ParseAddress(req.Caller)
	if err != nil {
		return nil, err
	}

	var supply domain.Amount
	out, err := s.execute(ctx, func(tx StateTx, _ *domain.ContractState) (*domain.Outcome, error) {
		ledger := NewTokenLedger(tx)
		if err := ledger.Debit(caller, req.Amount); err != nil {
			return nil, err
		}
		if err := ledger.BurnSupply(req.Amount); err != nil {
			return nil, err
		}

		info, _, err := tx.TokenInfo()
		if err != nil {
			return nil, err
		}
		supply = info.TotalSupply

		return domain.NewOutcome(domain.ActionBurn).
			Add("from", caller.String()).
			Add("amount", req.Amount.String()), nil
	})
	if err != nil {
		return nil, err
	}

	s.recordSupply(supply)
	s.logger.InfoContext(ctx, "tokens burned",
		"from", caller.String(),
		"amount", req.Amount.String())
	return out, nil
}

// Pause sets the pause flag. Owner only.
func (s *ContractService) Pause(ctx context.Context, req *PauseRequest) (*domain.Outcome, error) {
	return s.setPaused(ctx, req.Caller, true)
}

// Unpause clears the pause flag. Owner only.
func (s *ContractService) Unpause(ctx context.Context, req *PauseRequest) (*domain.Outcome, error) {
	return s.setPaused(ctx, req.Caller, false)
}

func (s *ContractService) setPaused(ctx context.Context, rawCaller string, paused bool) (*domain.Outcome, error) {
	caller, err := domain.ParseAddress(rawCaller)
	if err != nil {
		return nil, err
	}

	action := domain.ActionPause
	if !paused {
		action = domain.ActionUnpause
	}

	return s.execute(ctx, func(tx StateTx, state *domain.ContractState) (*domain.Outcome, error) {
		if err := state.RequireOwner(caller); err != nil {
			return nil, err
		}
		state.Paused = paused
		if err := tx.SetContractState(state); err != nil {
			return nil, err
		}
		return domain.NewOutcome(action), nil
	})
}

// execute runs one mutating call: it loads the contract state inside an
// atomic transaction, hands it to fn, and commits only if fn succeeds.
func (s *ContractService) execute(ctx context.Context, fn func(tx StateTx, state *domain.ContractState) (*domain.Outcome, error)) (*domain.Outcome, error) {
	var out *domain.Outcome
	err := s.store.Update(ctx, func(tx StateTx) error {
		state, ok, err := tx.ContractState()
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotInstantiated
		}
		result, err := fn(tx, state)
		if err != nil {
			return err
		}
		out = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ContractService) recordSupply(supply domain.Amount) {
	if s.recorder != nil {
		s.recorder.SetTotalSupply(supply)
	}
}
