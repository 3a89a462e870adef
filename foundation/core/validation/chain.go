// File: chain.go
// Title: Validator Chain Implementation
// Description: Composable validator chains that run validation steps in
//              order, optionally stopping at the first failure, and
//              conditional validators switched by a predicate.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-15 v0.2.0: Context cancellation between steps, parallel validator removed

package validation

import (
	"context"
	"fmt"
)

// ValidatorChain represents a chain of validators that are executed sequentially
type ValidatorChain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates a new validator chain with an optional name
func NewValidatorChain(name ...string) *ValidatorChain {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}

	return &ValidatorChain{
		validators: make([]Validator, 0),
		name:       chainName,
	}
}

// Add adds a validator to the chain
func (c *ValidatorChain) Add(validator Validator) *ValidatorChain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError configures the chain to stop on the first validation error.
// By default, chains collect all validation errors.
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// Validate executes all validators in the chain and returns combined results
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	return c.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext executes the validators in order. A done context ends
// the chain with a CodeCanceled error.
func (c *ValidatorChain) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	var allResults []ValidationResult

	for i, validator := range c.validators {
		if err := ctx.Err(); err != nil {
			allResults = append(allResults, NewValidationError(CodeCanceled, err.Error()))
			break
		}

		result := validator.ValidateWithContext(ctx, value)
		if !result.Valid {
			result.WithContext("failedValidator", i)
		}
		allResults = append(allResults, result)

		if c.stopOnFirstError && !result.Valid {
			break
		}
	}

	combined := Combine(allResults...)
	if c.name != "" {
		combined.WithContext("validatorChain", c.name)
	}
	combined.WithContext("executedValidators", len(allResults))

	return combined
}

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}

// Name returns the chain name
func (c *ValidatorChain) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}

// ConditionalValidator allows conditional execution of validators based on a predicate
type ConditionalValidator struct {
	condition func(interface{}) bool
	validator Validator
	name      string
}

// NewConditionalValidator creates a validator that only executes if the condition is true
func NewConditionalValidator(condition func(interface{}) bool, validator Validator, name ...string) *ConditionalValidator {
	condName := ""
	if len(name) > 0 {
		condName = name[0]
	}

	return &ConditionalValidator{
		condition: condition,
		validator: validator,
		name:      condName,
	}
}

// When wraps validator so that it only runs when enabled is set
func When(enabled bool, validator Validator, name ...string) *ConditionalValidator {
	return NewConditionalValidator(func(interface{}) bool { return enabled }, validator, name...)
}

// Validate executes the validator only if the condition is met
func (c *ConditionalValidator) Validate(value interface{}) ValidationResult {
	return c.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext executes conditional validation with context
func (c *ConditionalValidator) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	if !c.condition(value) {
		return NewValidationResult()
	}

	result := c.validator.ValidateWithContext(ctx, value)
	if c.name != "" && !result.Valid {
		result.WithContext("conditionalValidator", c.name)
	}
	return result
}

// String returns a string representation of the conditional validator
func (c *ConditionalValidator) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ConditionalValidator{name: %s}", name)
}
