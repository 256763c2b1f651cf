/*
Package seqs connects zipped traversal to Go iterators (iter.Seq).

Where package zips walks cursors over sequences whose bounds are known up
front, the functions here pair plain iterators that can only be pulled one
element at a time:

  - [Zip], [Zip3]: lockstep pairing that stops at the shortest input.
  - [ZipLongest]: pairing that pads the shorter input with fill values.
  - [Unzip], [Enumerate]: two-variable range forms.
  - [Take], [Skip], [First], [Last]: bounding and peeking at cursor ranges.
    Random access ranges, zipped ones included, jump instead of stepping.
  - [Collect2], [Collect3]: draining pairs back into one slice per component.

Both zips.Tuple2 and zips.Tuple3 are shared with package zips, so a
cursor range turned into an iterator with cursors.All composes with these
helpers directly.

# Termination

[Zip] and [Zip3] stop at the shortest input. A zip cursor from package zips
only equals its end when every component does, so its ranges must be built
from sequences of equal length. An iterator carries no end position to
compare against, so these functions end on the first exhausted input
instead. Use [ZipLongest] when nothing may be dropped.

# Resources

The zipping functions drive the secondary inputs with iter.Pull. The pulled
iterators are stopped on every exit path, including an early break by the
consumer, so no goroutine outlives the loop.
*/
package seqs
