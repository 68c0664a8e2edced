// Package subscription models the plan catalog and the subscription that
// binds a workspace to a plan. Order pricing and the monthly order generator
// read it; nothing in photoflow mutates it.
package subscription
