// Package services implements the driving ports over the driven ports.
// Services hold no state of their own beyond their dependencies; every
// query is recomputed from the set store on each call.
package services
