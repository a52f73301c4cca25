package catalog

const createFigures = `CREATE TABLE IF NOT EXISTS figures (
    figure_id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    exercise TEXT NOT NULL,
    seq INTEGER NOT NULL,
    file TEXT NOT NULL,
    format TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_figures_exercise ON figures(exercise);`

const selectFigures = `SELECT figure_id, run_id, exercise, seq, file, format, created_at FROM figures`

const orderFigures = ` ORDER BY exercise, created_at, seq`
