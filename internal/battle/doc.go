// Package battle implements the turn based battle state machine.
//
// A Battle moves Initializing -> PlayerTurn, then alternates PlayerTurn and EnemyTurn
// until it reaches one of the terminal states Won, Lost or Escaped. Transitions are
// synchronous and hold no dependencies so a Battle can be cloned, persisted and resumed.
// The pause before the enemy's reply is modeled by a Scheduler outside the machine.
package battle
