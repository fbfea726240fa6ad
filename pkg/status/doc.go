/*
Package status owns file access under the migration root and the per-file
outcome of a run.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+-----+
	|   Files   |           | Outcomes |
	| (Manager) |           | (Summary)|
	+-----------+           +----------+

🎯 Purpose:
- Reads manifest files relative to the root
- Replaces changed files atomically (temp file + rename), keeping permissions
- Tracks processed / no changes / not found / error per file
- Counts outcomes for the run summary
- Records the confirm() review listing

A failed write never leaves a half-written file behind: the original stays in
place until the rename.
*/
package status
