// Package log defines standard attribute keys for GRN inference operations.
//
// This file contains predefined attribute keys that provide consistency
// across all logging operations in GeNet. Using these standard keys enables
// better log analysis, monitoring, and debugging of inference runs.
//
// The attributes are organized into categories:
//   - Model and Operation Context
//   - Data Shape and Characteristics
//   - Network and Scoring Context
//
// These keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples", "grn.target_gene") to enable structured log analysis
// and filtering.

package log

// Model and Operation Context
// These attributes identify the model type, instance, and operation being performed.
const (
	// ModelNameKey identifies the type of regression model.
	// Examples: "Lasso", "RandomForestRegressor", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "infer", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the
	// operation. Examples: "linear", "ensemble", "grn", "metrics"
	ComponentKey = "ml.component"

	// SeedKey records the random seed of a reproducible run; absent when
	// the run is unseeded.
	SeedKey = "ml.seed"

	// DurationMsKey records elapsed wall-clock time in milliseconds.
	DurationMsKey = "ml.duration_ms"
)

// Data Shape and Characteristics
// These attributes describe the structure of the expression data being processed.
const (
	// SamplesKey indicates the number of samples (columns of the expression
	// table, rows of a design matrix) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of candidate-regulator features.
	FeaturesKey = "data.features"

	// GenesKey indicates the number of gene rows in an expression table.
	GenesKey = "data.genes"

	// TrainSamplesKey and TestSamplesKey record the fold sizes of a
	// train/test split.
	TrainSamplesKey = "data.train_samples"
	TestSamplesKey  = "data.test_samples"

	// PathKey records the input file a table or edge list was loaded from.
	PathKey = "data.path"
)

// Network and Scoring Context
// These attributes describe predicted networks and their evaluation.
const (
	// TargetGeneKey identifies the gene currently treated as the regression
	// target during per-gene inference.
	TargetGeneKey = "grn.target_gene"

	// MethodKey identifies the inference strategy in use.
	// Standard values: "lasso", "forest"
	MethodKey = "grn.method"

	// EdgesKey indicates the number of predicted regulator->target edges.
	EdgesKey = "grn.edges"

	// RegulatorsKey indicates the number of predicted regulators for a
	// single target gene.
	RegulatorsKey = "grn.regulators"

	// WorkersKey records the parallel fan-out width of a prediction run.
	WorkersKey = "grn.workers"

	// TrainScoreKey and TestScoreKey record diagnostic R² values of a
	// per-target fit.
	TrainScoreKey = "grn.train_r2"
	TestScoreKey  = "grn.test_r2"

	// IntersectionKey and UnionKey record edge-set overlap sizes reported
	// by the IOU scorer.
	IntersectionKey = "grn.intersection"
	UnionKey        = "grn.union"

	// IOUKey records the final intersection-over-union score.
	IOUKey = "grn.iou"
)
