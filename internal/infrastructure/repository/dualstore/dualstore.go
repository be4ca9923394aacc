// Package dualstore wraps a primary (MongoDB) repository and a flat-file
// fallback behind the same contract. Every operation tries the primary first;
// on a store failure it logs a warning and retries once against the fallback,
// surfacing the fallback's error if that fails too. A not-found result from
// the primary is a business outcome and is returned as-is. Writes that reach
// the primary are not mirrored to the fallback, so the two stores can diverge
// after an outage; there is no reconciliation.
package dualstore

import (
	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/metrics"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// shouldFallBack reports whether a primary-store error warrants the retry.
func shouldFallBack(err error) bool {
	return err != nil && !apperror.IsNotFound(err)
}

func recordFallback(logger usecasecontract.IAppLogger, collection, operation string, err error) {
	logger.Warnf("primary store %s.%s failed, falling back to file store: %v", collection, operation, err)
	metrics.StoreFallbacks.WithLabelValues(collection, operation).Inc()
}
