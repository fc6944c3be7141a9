/*
Package solver implements the inprocessing core of a CDCL-style SAT
solver: covered clause elimination (CCE), the asymmetric and covered
watched-literal/occurrence propagators it composes, transitive reduction
of the binary implication graph, and the reversible extension stack used
to reconstruct a model of the original formula after clauses are
discarded.

It deliberately does not implement a full solver: the outer CDCL search
loop, conflict analysis, decision heuristics, and DIMACS/DRAT parsing are
named external collaborators, not part of this package.

Building a formula

A Solver owns its clause database, assignment, watch lists and extension
stack. Clauses are added before solving begins:

    s := solver.New(nbVars, solver.DefaultOptions())
    s.AddClause(solver.NewClause([]solver.Lit{1, 2, 3}))
    s.AddClause(solver.NewClause([]solver.Lit{-1, 2}))

Running inprocessing

The outer search invokes the inprocessing passes between search phases:

    removed, err := s.Cover()
    ...
    removed, err = s.TransRed()

Both passes mutate the clause database (marking clauses garbage). Cover
also records every clause it removes on s's extension stack, so that a
model of the reduced formula can later be turned back into a model of the
original one (TransRed only removes implied clauses and records nothing):

    m := s.Extend(reducedModel)
*/
package solver
