// Package dataprocessing joins the validated menu and sales tables and
// produces the aggregate views of one report run.
//
// The package is organized into four components:
//
// 1. Join: left-joins sales into the menu on item_id, enforcing the
// many-to-one cardinality and deriving per-row financial fields
// 2. Category normalization: a deterministic string pipeline that folds
// free-text categories into a consistent vocabulary (Veg / Non-veg)
// 3. Aggregation: daily KPIs, per-(date, category) revenue split, and the
// ranked top-items-per-day table, each with an explicit ordering contract
// 4. Derived metrics: average spend per student and an edge-padded 3-point
// moving average over the daily cost series
//
// All functions are pure over their inputs; aggregates are recomputed fully
// on every run with no incremental state.
package dataprocessing
