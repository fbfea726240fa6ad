/*
Package operation orchestrates a migration run over the manifest.

	+-------------+
	|   Config    |
	| (manifest)  |
	+------+------+
	       |
	+------+------+     +-------------+
	|  Operation  | --> |   Status    |
	| (per file)  |     |   (store)   |
	+------+------+     +-------------+
	       |
	+------+------+
	|    text     |
	| (transform) |
	+-------------+

🎯 Purpose:
- Migrate: rewrite the alert calls of every manifest file
- Inventory: list the confirm calls left for manual review
- Run files sequentially or with a bounded number of workers

🔄 Flow per file:
 1. Missing under root -> not found
 2. Read, check UTF-8, transform
 3. Changed -> atomic write (or a diff on dry runs), else no changes
 4. Any failure -> error with the reason, the batch goes on

Results are always reported in manifest order, whatever the parallelism.

🔍 Example:

	op, err := operation.NewMigrateOperation(operation.Options{
		Config: cfg,
		Store:  status.New(cfg.RootDir()),
		Logger: logger,
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op)
*/
package operation
