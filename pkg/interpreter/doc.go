// Package interpreter executes rinha programs by walking their AST directly.
// It evaluates the JSON-decoded tree produced by pkg/driver against lexical
// environments from pkg/runtime, with no bytecode stage and no static
// checking; every failure is detected at evaluation time and reported as a
// located runtime diagnostic.
package interpreter
