// Package config resolves the engine's tuning knobs.
//
// Resolution chain (highest priority first):
//  1. Environment variables (BIGINT_KARATSUBA_THRESHOLD, BIGINT_LOG_LEVEL)
//  2. A TOML file named by BIGINT_CONFIG
//  3. Adaptive hardware estimation (thresholds.go)
//  4. Static defaults
package config
