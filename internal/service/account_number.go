// internal/service/account_number.go
package service

import (
	"context"
	"fmt"
	"math/rand"

	"eagle-bank-api/internal/util"
)

// generateAccountNumber draws random candidates of the form 01XXXXXX until
// one is not present in the store. The check-then-insert sequence is not
// atomic with the eventual insert; the store's unique index on the account
// number resolves that race and the loser surfaces util.ErrDuplicateEntry.
// There is no retry cap: near-exhaustion of the 900000-number keyspace is
// an accepted risk at this scale.
func (s *bankAccountService) generateAccountNumber(ctx context.Context) (string, error) {
	for {
		suffix := 100000 + rand.Intn(900000)
		candidate := fmt.Sprintf("01%d", suffix)

		_, err := s.accountRepo.GetBankAccountByNumber(ctx, s.dbExecutor, candidate)
		if err == nil {
			continue // number already taken, redraw
		}
		if util.IsError(err, util.ErrNotFound) {
			return candidate, nil
		}
		return "", fmt.Errorf("failed to check candidate account number %s: %w", candidate, err)
	}
}
