// Package ordering holds the pure rules of the order workflow: request/order codes,
// line pricing, the merged client-order view and the client eligibility gate.
//
// Key functions:
//   - NextCode: scan-max-and-increment code generation (REQ-<year>-NNNNN, ORD-<year>-NNNNN)
//   - PriceItems: recomputes line totals and the request total
//   - MergeClientOrders: mirror-first, de-duplicated client order view
//   - EligibleClients / CheckClientEligible: the one-in-flight-order-per-client gate
package ordering
