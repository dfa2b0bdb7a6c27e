/*
Package order provides comparators for the ordered containers of this module.

A comparator is a function returning a negative number, zero or a positive
number, depending on whether its first argument sorts before, equal to or
after its second argument. Comparators have to define a total order; if they
do not, tree structures built on top of them will not uphold their
invariants.

One result value is reserved: Incomparable signals that two keys have no
defined order between them (think of NaN float values). Containers react to
it by panicking with a *KeyError, in the same way a Go map panics when used
with an unhashable key.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package order
